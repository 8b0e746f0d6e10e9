package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type MySQL struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type Redis struct {
	Addr string
	Pass string
	DB   int
}

type Storage struct {
	// Backend is one of sqlite, mysql, redis.
	Backend string
	// Path is the sqlite file.
	Path  string
	MySQL MySQL
	Redis Redis
}

type Admin struct {
	Name     string
	Email    string
	Password string
}

type Config struct {
	Storage Storage
	Admin   Admin
	UI      struct {
		// RedirectDelay is the cosmetic pause after a successful
		// password reset before the console returns to login.
		RedirectDelay time.Duration
	}
	Log struct {
		Path string
	}
}

func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("storage.backend", "sqlite")
	v.SetDefault("storage.path", "showroom.db")
	v.SetDefault("storage.mysql.host", "127.0.0.1")
	v.SetDefault("storage.mysql.port", 3306)
	v.SetDefault("storage.mysql.user", "root")
	v.SetDefault("storage.mysql.pass", "")
	v.SetDefault("storage.mysql.name", "elite_motors")
	v.SetDefault("storage.redis.addr", "127.0.0.1:6379")
	v.SetDefault("storage.redis.pass", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("admin.name", "Administrador")
	v.SetDefault("admin.email", "admin@elitemotors.com.br")
	v.SetDefault("admin.password", "admin123")
	v.SetDefault("ui.redirect_delay_sec", 2)
	v.SetDefault("log.path", "")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Storage: Storage{
			Backend: v.GetString("storage.backend"),
			Path:    v.GetString("storage.path"),
			MySQL: MySQL{
				Host: v.GetString("storage.mysql.host"),
				Port: v.GetInt("storage.mysql.port"),
				User: v.GetString("storage.mysql.user"),
				Pass: v.GetString("storage.mysql.pass"),
				Name: v.GetString("storage.mysql.name"),
			},
			Redis: Redis{
				Addr: v.GetString("storage.redis.addr"),
				Pass: v.GetString("storage.redis.pass"),
				DB:   v.GetInt("storage.redis.db"),
			},
		},
		Admin: Admin{
			Name:     v.GetString("admin.name"),
			Email:    v.GetString("admin.email"),
			Password: v.GetString("admin.password"),
		},
	}
	cfg.UI.RedirectDelay = time.Duration(v.GetInt("ui.redirect_delay_sec")) * time.Second
	if cfg.UI.RedirectDelay <= 0 {
		cfg.UI.RedirectDelay = 2 * time.Second
	}
	cfg.Log.Path = v.GetString("log.path")

	switch cfg.Storage.Backend {
	case "sqlite", "mysql", "redis":
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return cfg, nil
}
