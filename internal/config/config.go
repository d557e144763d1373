package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"PORT"`
	StorageDriver string `mapstructure:"STORAGE_DRIVER"` // "sqlite" or "json"
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	DataDir       string `mapstructure:"DATA_DIR"`

	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`

	OSSEndpoint        string `mapstructure:"OSS_ENDPOINT"`
	OSSBucket          string `mapstructure:"OSS_BUCKET"`
	OSSAccessKeyID     string `mapstructure:"OSS_ACCESS_KEY_ID"`
	OSSAccessKeySecret string `mapstructure:"OSS_ACCESS_KEY_SECRET"`

	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`

	PublicURL    string `mapstructure:"PUBLIC_URL"`
	QRServiceURL string `mapstructure:"QR_SERVICE_URL"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("STORAGE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_PATH", "wedding.db")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("PUBLIC_URL", "http://127.0.0.1:4000")
	viper.SetDefault("QR_SERVICE_URL", "https://api.qrserver.com/v1/create-qr-code/")

	viper.BindEnv("STORAGE_DRIVER")
	viper.BindEnv("DATABASE_PATH")
	viper.BindEnv("DATA_DIR")
	viper.BindEnv("ADMIN_USERNAME")
	viper.BindEnv("ADMIN_PASSWORD")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("OSS_ENDPOINT")
	viper.BindEnv("OSS_BUCKET")
	viper.BindEnv("OSS_ACCESS_KEY_ID")
	viper.BindEnv("OSS_ACCESS_KEY_SECRET")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("PUBLIC_URL")
	viper.BindEnv("QR_SERVICE_URL")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
