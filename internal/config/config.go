package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string `mapstructure:"PORT"`
	RedisUrl          string `mapstructure:"REDIS_URL"`
	TotalFeatureCount int    `mapstructure:"TOTAL_FEATURE_COUNT"`
}

func LoadConfig() (c Config, err error) {
	// Get environment type from ENV variable or use development as default
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Set default values
	viper.SetDefault("PORT", ":8080")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("TOTAL_FEATURE_COUNT", FeatureCountDefault)

	// Load environment file
	viper.SetConfigName(fmt.Sprintf(".env.%s", env))
	viper.SetConfigType("env")
	viper.AddConfigPath(".") // Look in the project root directory

	// Environment variables take precedence over config file
	viper.AutomaticEnv()

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		// Continue even if file is not found
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	// Map the values to the Config struct
	if err = viper.Unmarshal(&c); err != nil {
		return c, err
	}

	// The feature budget must be usable before any tile is served
	if err = ValidateFeatureCount(c.TotalFeatureCount); err != nil {
		return c, err
	}
	return
}
