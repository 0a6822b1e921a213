package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	MongoURI       string
	RabbitURI      string
	RabbitExchange string
	GeminiAPIKey   string
	StatsDBPath    string
}

// Load reads the environment, honoring a local .env file when present.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system env")
	}
	cfg := Config{
		MongoURI:       os.Getenv("MONGO_URI"),
		RabbitURI:      os.Getenv("RABBITMQ_URI"),
		RabbitExchange: os.Getenv("RABBITMQ_EXCHANGE"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		StatsDBPath:    os.Getenv("STATS_DB_PATH"),
	}
	if cfg.StatsDBPath == "" {
		cfg.StatsDBPath = "passaae.db"
	}
	return cfg
}

// InitLogger configures the process-wide logger. LOG_LEVEL accepts the
// usual logrus level names.
func InitLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(lvl)
	}
}
