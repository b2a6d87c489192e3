package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	ServerPort string

	JWTSecret string

	AccessTokenMaxAge  int
	RefreshTokenMaxAge int

	ResetTokenTTLSeconds int

	AQIAPIToken   string
	AQIAPIBaseURL string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	accessTokenMaxAge, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_MAX_AGE"))
	if err != nil || accessTokenMaxAge <= 0 {
		accessTokenMaxAge = 900
	}

	refreshTokenMaxAge, err := strconv.Atoi(os.Getenv("REFRESH_TOKEN_MAX_AGE"))
	if err != nil || refreshTokenMaxAge <= 0 {
		refreshTokenMaxAge = 2592000
	}

	resetTokenTTL, err := strconv.Atoi(os.Getenv("RESET_TOKEN_TTL"))
	if err != nil || resetTokenTTL <= 0 {
		resetTokenTTL = 3600
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	// The provider accepts a shared evaluation token when none is configured.
	aqiToken := os.Getenv("AQI_API_TOKEN")
	if aqiToken == "" {
		aqiToken = "demo"
	}

	return &Config{
		DBHost:     os.Getenv("PGHOST"),
		DBPort:     os.Getenv("PGPORT"),
		DBUser:     os.Getenv("PGUSER"),
		DBPassword: os.Getenv("PGPASSWORD"),
		DBName:     os.Getenv("PGDATABASE"),

		ServerPort: serverPort,

		JWTSecret: os.Getenv("JWT_SECRET"),

		AccessTokenMaxAge:  accessTokenMaxAge,
		RefreshTokenMaxAge: refreshTokenMaxAge,

		ResetTokenTTLSeconds: resetTokenTTL,

		AQIAPIToken:   aqiToken,
		AQIAPIBaseURL: os.Getenv("AQI_API_BASE_URL"),
	}, nil
}
