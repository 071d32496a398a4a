package config

import (
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Session  SessionConfig  `mapstructure:"session"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	Db       int    `mapstructure:"db"`
}

type SessionConfig struct {
	JwtSecret  string `mapstructure:"jwt_secret"`
	CookieName string `mapstructure:"cookie_name"`
	TTLHours   int    `mapstructure:"ttl_hours"`
}

type LoggerConfig struct {
	Mode string `mapstructure:"mode"`
}

// LoadConfig reads config.yaml from path and applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("session.cookie_name", "cart_session")
	viper.SetDefault("session.ttl_hours", 24)
	viper.SetDefault("logger.mode", "dev")

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine, env vars can carry the whole config.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyEnvOverrides(&config)
	return &config, nil
}

func applyEnvOverrides(c *Config) {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = cast.ToInt(v)
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Postgres.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		c.Postgres.Port = cast.ToInt(v)
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Postgres.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Postgres.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Postgres.DbName = v
	}
	if v := os.Getenv("REDIS_ADDRESS"); v != "" {
		c.Redis.Address = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Session.JwtSecret = v
	}
}
