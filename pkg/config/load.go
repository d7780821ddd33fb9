package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment. When envFilePath is given,
// each path is tried in order; otherwise a .env in the working directory is
// used if present. Missing files are not an error.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file found, using system environment")
		}
		return loadFromEnv()
	}
	for _, path := range envFilePath {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("environment file not loaded", "path", path, "error", err)
			continue
		}
		return loadFromEnv()
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	slog.Default().Info("config loaded",
		"env", cfg.Env,
		"server_port", cfg.Server.Port,
		"db", maskValue(cfg.DB.Url),
		"jwt_expiry", cfg.Jwt.Expiry,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
	)
	return &cfg, nil
}

func maskValue(v string) string {
	if len(v) <= 6 {
		return "****"
	}
	return v[:2] + "****" + v[len(v)-4:]
}
