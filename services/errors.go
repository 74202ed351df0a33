package services

import "errors"

// Every failure a service can hand back maps onto exactly one HTTP status;
// controllers do the mapping in one place.
var (
	ErrUnauthenticated    = errors.New("could not validate credentials")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrDuplicateIdentity  = errors.New("email or username already registered")
	ErrForbidden          = errors.New("not authorized for this resource")
	ErrNotFound           = errors.New("resource not found")
	ErrFoodReference      = errors.New("meal item references unknown food")
)
