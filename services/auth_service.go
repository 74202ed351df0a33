package services

import (
	"errors"
	"time"

	"github.com/chenashkenazi/food-tracker/models"
	"github.com/chenashkenazi/food-tracker/utils"

	"gorm.io/gorm"
)

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	Create(user *models.User) error
	ByID(id uint) (*models.User, error)
	ByEmail(email string) (*models.User, error)
	ByUsername(username string) (*models.User, error)
}

type AuthService struct {
	users    UserStore
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users UserStore, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, tokenTTL: tokenTTL}
}

// Register creates a user with a bcrypt-hashed password. Email and username
// must both be unused.
func (s *AuthService) Register(email, username, password string) (*models.User, error) {
	if _, err := s.users.ByEmail(email); err == nil {
		return nil, ErrDuplicateIdentity
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.users.ByUsername(username); err == nil {
		return nil, ErrDuplicateIdentity
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          email,
		Username:       username,
		HashedPassword: hashed,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and mints a signed token. Nothing is written
// to the database.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.users.ByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !utils.CheckPasswordHash(password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken(user.ID, user.Username, s.secret, s.tokenTTL)
}

// ResolveIdentity turns a bearer token into the user it was issued to. The
// user must still exist; a token for a deleted account is worthless.
func (s *AuthService) ResolveIdentity(tokenString string) (*models.User, error) {
	claims, err := utils.ParseToken(tokenString, s.secret)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	user, err := s.users.ByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}
