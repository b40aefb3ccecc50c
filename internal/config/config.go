package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/tranquocan24/FlashcardLearning-sub000/pkg/validator"
)

type Config struct {
	App      AppConfig `mapstructure:"app" validate:"required"`
	BotToken string    `mapstructure:"bot_token" validate:"required"`
	DB       DBConfig  `mapstructure:"db" validate:"required"`
	Env      string    `mapstructure:"env" validate:"oneof=development production"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type DBConfig struct {
	Conn ConnConfig `mapstructure:"conn"`
	Pool PoolConfig `mapstructure:"pool"`
}

type ConnConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type PoolConfig struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

// envBinds maps config keys to the environment variables that override
// them, so secrets stay out of the yml files.
var envBinds = map[string]string{
	"bot_token":        "BOT_TOKEN",
	"db.conn.host":     "DB_HOST",
	"db.conn.port":     "DB_PORT",
	"db.conn.user":     "DB_USER",
	"db.conn.password": "DB_PASSWORD",
	"db.conn.name":     "DB_NAME",
	"db.conn.ssl":      "DB_SSL",
}

func Init() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	name := os.Getenv("CONFIG_NAME")
	if name == "" {
		name = "default"
	}
	v.AddConfigPath("configs")
	v.SetConfigName(name)

	for key, env := range envBinds {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", name, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
