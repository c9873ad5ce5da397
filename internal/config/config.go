package config

import (
	"fmt"
	"os"
	"time"

	"github.com/chen-yiru/Vocabulary-review/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig     `mapstructure:"app" validate:"required"`
	BotToken string        `mapstructure:"bot_token"`
	Catalog  CatalogConfig `mapstructure:"catalog" validate:"required"`
	Review   ReviewConfig  `mapstructure:"review"`
	List     ListConfig    `mapstructure:"list"`
	DB       DBConfig      `mapstructure:"db" validate:"required"`
	Env      string        `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type CatalogConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"min=0"`
	RateLimit float64       `mapstructure:"rate_limit" validate:"min=0"`
	Burst     int           `mapstructure:"burst" validate:"min=0"`
}

type ReviewConfig struct {
	RepeatWindow time.Duration `mapstructure:"repeat_window" validate:"min=0"`
	ReviewType   string        `mapstructure:"review_type" validate:"omitempty,oneof=normal"`
}

type ListConfig struct {
	PageSize int `mapstructure:"page_size" validate:"min=0,max=100"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

var envBindings = [][2]string{
	{"bot_token", "BOT_TOKEN"},
	{"catalog.base_url", "CATALOG_BASE_URL"},
	{"db.conn.host", "DB_HOST"},
	{"db.conn.port", "DB_PORT"},
	{"db.conn.user", "DB_USER"},
	{"db.conn.password", "DB_PASSWORD"},
	{"db.conn.name", "DB_NAME"},
	{"db.conn.ssl", "DB_SSL"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("catalog.timeout", 10*time.Second)
	v.SetDefault("catalog.burst", 1)
	v.SetDefault("review.repeat_window", 300*time.Millisecond)
	v.SetDefault("review.review_type", "normal")
	v.SetDefault("list.page_size", 20)
	v.SetDefault("db.conn.ssl", "disable")
	v.SetDefault("db.cfg.max_open_conns", 10)
	v.SetDefault("db.cfg.max_idle_conns", 5)
}

// Init reads configs/<CONFIG_NAME>.yaml from dir, overlays the bound
// environment variables and validates the result.
func Init(dir string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath(dir)
	v.SetConfigName(configName)
	setDefaults(v)

	for _, b := range envBindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", b[1], err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
