package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Server struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string
}

type JWT struct {
	Secret   string
	Issuer   string
	ExpHours int
}

type Admin struct {
	Username string
	Password string
	Email    string
}

type Redis struct {
	Addr             string
	Password         string
	DB               int
	LoginMaxAttempts int
	LoginWindowMin   int
}

type Config struct {
	Server Server
	DB     DB
	JWT    JWT
	Admin  Admin
	Redis  Redis
}

// Load reads the yaml config at path over the defaults below. An empty path
// runs on defaults alone (sqlite file, dev secret), which is enough for local
// development.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "inkwell")
	v.SetDefault("db.path", "inkwell.db")
	v.SetDefault("jwt.secret", "dev-secret")
	v.SetDefault("jwt.issuer", "inkwell")
	v.SetDefault("jwt.exp_hours", 24)
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin123")
	v.SetDefault("admin.email", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.login_max_attempts", 10)
	v.SetDefault("redis.login_window_min", 15)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Server: Server{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
			Path:   v.GetString("db.path"),
		},
		JWT: JWT{
			Secret:   v.GetString("jwt.secret"),
			Issuer:   v.GetString("jwt.issuer"),
			ExpHours: v.GetInt("jwt.exp_hours"),
		},
		Admin: Admin{
			Username: v.GetString("admin.username"),
			Password: v.GetString("admin.password"),
			Email:    v.GetString("admin.email"),
		},
		Redis: Redis{
			Addr:             v.GetString("redis.addr"),
			Password:         v.GetString("redis.password"),
			DB:               v.GetInt("redis.db"),
			LoginMaxAttempts: v.GetInt("redis.login_max_attempts"),
			LoginWindowMin:   v.GetInt("redis.login_window_min"),
		},
	}
	if cfg.JWT.ExpHours <= 0 {
		cfg.JWT.ExpHours = 24
	}
	return cfg, nil
}
