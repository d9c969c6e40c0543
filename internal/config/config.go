package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "trackdesk/internal/util/env"
	"trackdesk/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting       bool
	DatabaseDriver  string            `env:"DATABASE_DRIVER" env-default:"postgres"`
	DatabaseDsn     string            `env:"DATABASE_DSN"    required:"true"`
	EnvMode         env_utils.EnvMode `env:"ENV_MODE"        required:"true"`
	ListenAddr      string            `env:"LISTEN_ADDR"     env-default:":4010"`
	BackendRootPath string
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	// Tests run against an in-memory database and need no .env file.
	if env.IsTesting {
		env.DatabaseDriver = "sqlite"
		env.DatabaseDsn = "file:trackdesk_test?mode=memory&cache=shared"
		env.EnvMode = env_utils.EnvModeDevelopment
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	env.BackendRootPath = backendRoot

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if env.DatabaseDriver != "postgres" && env.DatabaseDriver != "sqlite" {
		log.Error("DATABASE_DRIVER is invalid", "driver", env.DatabaseDriver)
		os.Exit(1)
	}

	if env.EnvMode != env_utils.EnvModeDevelopment && env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	log.Info("Environment variables loaded successfully!")
}
