package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	JWTIssuer     string

	// Workflow tuning
	OperationTimeout    time.Duration
	ApprovalRoles       []string
	ManagerChainMaxHops int
	RateLimit           string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "leave-workflow-app")
	viper.SetDefault("OPERATION_TIMEOUT", "10s")
	viper.SetDefault("APPROVAL_ROLES", "department_head,hr")
	viper.SetDefault("MANAGER_CHAIN_MAX_HOPS", 10)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	operationTimeoutStr := viper.GetString("OPERATION_TIMEOUT")
	operationTimeout, err := time.ParseDuration(operationTimeoutStr)
	if err != nil {
		operationTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for OPERATION_TIMEOUT ('%s'). Defaulting to %s.\n", operationTimeoutStr, operationTimeout.String())
	}
	cfg.OperationTimeout = operationTimeout

	rolesStr := viper.GetString("APPROVAL_ROLES")
	for _, role := range strings.Split(rolesStr, ",") {
		if role = strings.TrimSpace(role); role != "" {
			cfg.ApprovalRoles = append(cfg.ApprovalRoles, role)
		}
	}

	cfg.ManagerChainMaxHops = viper.GetInt("MANAGER_CHAIN_MAX_HOPS")
	if cfg.ManagerChainMaxHops <= 0 {
		cfg.ManagerChainMaxHops = 10
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	return cfg, nil
}
