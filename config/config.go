package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Flight fare API (Tequila-compatible).
	FlightsAPIKey string `mapstructure:"FLIGHTS_API_KEY"`
	FlightsAPIURL string `mapstructure:"FLIGHTS_API_URL"`
	PartnerTag    string `mapstructure:"PARTNER_TAG"`

	// Stay inventory API.
	StaysAPIKey       string `mapstructure:"STAYS_API_KEY"`
	StaysLocationsURL string `mapstructure:"STAYS_LOCATIONS_URL"`
	StaysAPIURL       string `mapstructure:"STAYS_API_URL"`

	// Transactional email (Resend).
	ResendAPIKey string `mapstructure:"RESEND_API_KEY"`
	EmailFrom    string `mapstructure:"EMAIL_FROM"`
	EnquiryInbox string `mapstructure:"ENQUIRY_INBOX"`

	// All search prices are quoted in this currency.
	DefaultCurrency string `mapstructure:"DEFAULT_CURRENCY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("FLIGHTS_API_KEY", "")
	viper.SetDefault("FLIGHTS_API_URL", "https://api.tequila.kiwi.com/v2/search")
	viper.SetDefault("PARTNER_TAG", "touringplaces")
	viper.SetDefault("STAYS_API_KEY", "")
	viper.SetDefault("STAYS_LOCATIONS_URL", "https://api.stays.kiwi.com/locations/query")
	viper.SetDefault("STAYS_API_URL", "https://api.stays.kiwi.com/stays/search")
	viper.SetDefault("RESEND_API_KEY", "")
	viper.SetDefault("EMAIL_FROM", "Touring Places <bookings@touringplaces.co.za>")
	viper.SetDefault("ENQUIRY_INBOX", "enquiries@touringplaces.co.za")
	viper.SetDefault("DEFAULT_CURRENCY", "ZAR")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
