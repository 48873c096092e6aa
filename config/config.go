package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBDriver  string // postgres or mysql
	DBName    string
	JWTKey    string
	SaltRound int

	EmailSender    string
	Password       string // SMTP Password
	SendGridApiKey string // Preferred over SMTP when set

	GatewayApiURL     string // Payment gateway base URL
	GatewayApiKey     string
	GatewaySecretKey  string
	GatewayApiVersion string

	EnableRevenueSnapshots bool // Toggles the monthly revenue snapshot scheduler
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBDriver:  getEnv("DB_DRIVER", "postgres"),
		DBName:    getEnv("DB_NAME", "formaplus"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender:    getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:       getEnv("PASSWORD", "defaultSecret"),
		SendGridApiKey: getEnv("SENDGRID_API_KEY", ""),

		GatewayApiURL:     getEnv("GATEWAY_API_URL", "https://api.sandbox.paynest.io/v1/"),
		GatewayApiKey:     getEnv("GATEWAY_API_KEY", ""),
		GatewaySecretKey:  getEnv("GATEWAY_SECRET_KEY", ""),
		GatewayApiVersion: getEnv("GATEWAY_API_VERSION", "2.0"),

		EnableRevenueSnapshots: getEnvBool("ENABLE_REVENUE_SNAPSHOTS", true),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GatewayApiKey == "" {
		log.Println("Warning: GATEWAY_API_KEY not set. Payment verification will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a bool or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
