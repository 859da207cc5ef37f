/**
 * @description
 * This package handles the configuration management for the service. It uses
 * the Viper library to read configuration from environment variables,
 * providing a centralized and straightforward way to manage application
 * settings.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */

package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the wallet service.
// These values are loaded from environment variables.
type Config struct {
	ServerPort        string `mapstructure:"SERVER_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	RabbitMQURL       string `mapstructure:"RABBITMQ_URL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	JWTIssuer         string `mapstructure:"JWT_ISSUER"`
	TokenTTLMinutes   int    `mapstructure:"TOKEN_TTL_MINUTES"`
	MinTransferAmount int64  `mapstructure:"MIN_TRANSFER_AMOUNT"`
	InitialBalanceMin int64  `mapstructure:"INITIAL_BALANCE_MIN"`
	InitialBalanceMax int64  `mapstructure:"INITIAL_BALANCE_MAX"`
}

// LoadConfig reads configuration from environment variables from the given path.
// It uses Viper to automatically bind environment variables to the Config struct.
func LoadConfig(path string) (config Config, err error) {
	// Tell viper the path to look for the optional .env file.
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	// Enable automatic binding of environment variables.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JWT_ISSUER", "wallet-service")
	viper.SetDefault("TOKEN_TTL_MINUTES", 60)
	viper.SetDefault("MIN_TRANSFER_AMOUNT", 100)
	viper.SetDefault("INITIAL_BALANCE_MIN", 10000)
	viper.SetDefault("INITIAL_BALANCE_MAX", 99999)

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("DATABASE_URL")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("JWT_SECRET")
	_ = viper.BindEnv("JWT_ISSUER")
	_ = viper.BindEnv("TOKEN_TTL_MINUTES")
	_ = viper.BindEnv("MIN_TRANSFER_AMOUNT")
	_ = viper.BindEnv("INITIAL_BALANCE_MIN")
	_ = viper.BindEnv("INITIAL_BALANCE_MAX")

	// Attempt to read the config file. It's okay if it doesn't exist.
	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
		err = nil
	}

	// Unmarshal the configuration into the Config struct.
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		config.ServerPort = port
	}

	if config.TokenTTLMinutes <= 0 {
		log.Printf("level=warn component=config msg=\"invalid token ttl configured; using default\" ttl_minutes=%d", config.TokenTTLMinutes)
		config.TokenTTLMinutes = 60
	}
	if config.MinTransferAmount <= 0 {
		log.Printf("level=warn component=config msg=\"invalid minimum transfer configured; using default\" min_transfer=%d", config.MinTransferAmount)
		config.MinTransferAmount = 100
	}
	if config.InitialBalanceMin < 0 {
		log.Printf("level=warn component=config msg=\"negative initial balance configured; coercing to zero\" initial_balance_min=%d", config.InitialBalanceMin)
		config.InitialBalanceMin = 0
	}
	if config.InitialBalanceMax < config.InitialBalanceMin {
		log.Printf("level=warn component=config msg=\"initial balance range inverted; collapsing to min\" min=%d max=%d", config.InitialBalanceMin, config.InitialBalanceMax)
		config.InitialBalanceMax = config.InitialBalanceMin
	}

	return
}
