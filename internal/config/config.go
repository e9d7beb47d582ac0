package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StorageBackendFile     = "file"
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

type Config struct {
	StorageBackend string
	LedgerFileDir  string
	LedgerKey      string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort        string
	OperatorWorkers int
	LogLevel        string
}

// PostgresConnectionString builds the lib/pq DSN for the configured database.
func (c *Config) PostgresConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is fine, the process environment still applies.
	_ = godotenv.Load()

	// Defaults run a single user instance against ./data
	env := Config{
		StorageBackend:   StorageBackendFile,
		LedgerFileDir:    "./data",
		LedgerKey:        "moneySaverData",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		OperatorWorkers:  1,
		LogLevel:         "info",
	}

	setString(&env.StorageBackend, "STORAGE_BACKEND")
	setString(&env.LedgerFileDir, "LEDGER_FILE_DIR")
	setString(&env.LedgerKey, "LEDGER_KEY")
	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.HTTPPort, "HTTP_PORT")
	setString(&env.LogLevel, "LOG_LEVEL")

	envWorkers := os.Getenv("OPERATOR_WORKERS")
	if len(envWorkers) != 0 {
		workers, err := strconv.Atoi(envWorkers)
		if err != nil {
			return nil, fmt.Errorf("OPERATOR_WORKERS: %w", err)
		}
		env.OperatorWorkers = workers
	}

	switch env.StorageBackend {
	case StorageBackendFile, StorageBackendPostgres, StorageBackendMemory:
	default:
		return nil, fmt.Errorf("STORAGE_BACKEND: unknown backend %q", env.StorageBackend)
	}

	return &env, nil
}

func setString(target *string, key string) {
	value := os.Getenv(key)
	if len(value) != 0 {
		*target = value
	}
}
