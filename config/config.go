package config

import (
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"hermannm.dev/wrap"
)

type Config struct {
	API    API
	SQLite SQLite
	Ollama Ollama
}

type API struct {
	Port string `env:"API_PORT"`
}

type SQLite struct {
	DatabasePath string `env:"SQLITE_DB_PATH"`
}

type Ollama struct {
	BaseURL         string        `env:"OLLAMA_BASE_URL"          envDefault:"http://localhost:11434"`
	Model           string        `env:"OLLAMA_MODEL"             envDefault:"llama3"`
	Timeout         time.Duration `env:"OLLAMA_TIMEOUT"           envDefault:"5m"`
	LivenessTimeout time.Duration `env:"OLLAMA_LIVENESS_TIMEOUT"  envDefault:"10s"`
	MaxOutputTokens int           `env:"OLLAMA_MAX_OUTPUT_TOKENS" envDefault:"500"`
}

func ReadFromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil {
		return Config{}, wrap.Error(err, "failed to load .env file")
	}

	var config Config
	if err := env.ParseWithOptions(&config, env.Options{RequiredIfNoDef: true}); err != nil {
		return Config{}, err
	}

	return config, nil
}
