package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Telegram Telegram
	APIToken string
	// Path to the static question catalog seeded at startup.
	QuestionsFile string
}

type Server struct {
	Port string
	Mode string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Telegram struct {
	BotToken string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("QUESTIONS_FILE", "data/questions.json")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("GIN_MODE")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Telegram.BotToken = viper.GetString("TELEGRAM_BOT_TOKEN")
	config.APIToken = viper.GetString("API_TOKEN")
	config.QuestionsFile = viper.GetString("QUESTIONS_FILE")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
