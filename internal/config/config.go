package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Configはアプリ全体の設定。
// JWT_SECRETにデフォルトは用意しない（未設定なら起動失敗）。
type Config struct {
	Port      string `envconfig:"PORT" default:"3001"`
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// 起動時にseedする管理者。デフォルトはローカル確認用で、
	// 本番ではかならず差し替える。
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@innova.com"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
}

// Loadは環境変数から設定を読み込む。
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}

	// 必須チェック（required tagは空文字を弾かない）
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}
