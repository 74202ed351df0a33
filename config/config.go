package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chenashkenazi/food-tracker/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port           string
	DatabaseDSN    string
	JWTSecret      []byte
	TokenTTL       time.Duration
	AllowedOrigins []string
}

// Load reads the environment, honoring a local .env file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		envOr("DB_NAME", "foodtracker"),
		envOr("DB_PORT", "5432"),
	)

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}

	return &Config{
		Port:           envOr("PORT", "8000"),
		DatabaseDSN:    dsn,
		JWTSecret:      []byte(secret),
		TokenTTL:       30 * time.Minute,
		AllowedOrigins: origins,
	}, nil
}

func (c *Config) OpenDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(c.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for every tracked entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Meal{},
		&models.MealItem{},
		&models.NutritionGoal{},
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
