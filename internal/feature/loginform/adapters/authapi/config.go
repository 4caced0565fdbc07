// Package authapi は認証エンドポイント用のHTTPクライアントを提供します。
package authapi

import (
	"time"

	"loginform/internal/platform/config"
)

// DefaultLoginURL はAUTH_LOGIN_URLが未設定の場合に使用するログインエンドポイントです。
const DefaultLoginURL = "http://127.0.0.1:8000/login"

// Config は認証APIクライアントの設定を保持します。
type Config struct {
	LoginURL string        // ログインエンドポイントの完全なURL
	Timeout  time.Duration // リクエスト全体のタイムアウト
}

// LoadConfig は環境変数から認証APIクライアントの設定を読み込みます。
func LoadConfig() Config {
	return Config{
		LoginURL: config.String("AUTH_LOGIN_URL", DefaultLoginURL),
		Timeout:  config.Duration("LOGIN_TIMEOUT", 10*time.Second),
	}
}
