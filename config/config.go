package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string

	Database DatabaseConfigs
	Auth     AuthConfigs
	Storage  S3Configs
	File     FileConfigs
	Cache    CacheConfigs
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type AuthConfigs struct {
	TokenSecret string
	AccessToken TokenConfigs

	Google OAuth2Config
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type OAuth2Config struct {
	Name     string
	Issuer   string
	ClientID string
	IDField  string
}

type S3Configs struct {
	Region         string
	Endpoint       string
	PublicEndpoint string
	AccessKey      string
	SecretKey      string
	SSLDisabled    bool
}

type FileConfigs struct {
	MaxSize int64
}

type CacheConfigs struct {
	Backend   string // "memory" or "redis"
	RedisAddr string
}

// Load reads a TOML configuration file. The database password may be
// kept out of the file and supplied through DB_PASSWORD instead.
func Load(path string) (Configs, error) {
	var cfg Configs
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
	}

	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	return cfg, nil
}
