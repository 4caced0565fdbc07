package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"loginform/internal/feature/loginform/domain/entity"
	"loginform/internal/feature/loginform/usecase"
)

// ErrLoginFailed は認証エンドポイントが2xx以外を返した場合のエラーです。
// 4xxと5xxは区別しません。メッセージはそのままユーザーに表示されます。
var ErrLoginFailed = errors.New("Login failed. Please check your credentials.")

// ErrInvalidJSON は2xxのボディが単一の正しいJSON値でない場合のエラーです。
var ErrInvalidJSON = errors.New("response body is not valid JSON")

// maxResponseBytes は読み込むレスポンスボディの上限です。
const maxResponseBytes = 1 << 20

// Client は認証エンドポイントにJSONでログイン要求を送るAuthenticator実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがAuthenticatorを実装していることをコンパイル時に検証します。
var _ usecase.Authenticator = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Login は{email, password}をPOSTし、2xxの場合はJSONボディを返します。
// 2xx以外はErrLoginFailed、ボディがJSONでない場合はデコードエラーを返します。
func (c *Client) Login(ctx context.Context, creds entity.Credentials) (json.RawMessage, error) {
	payload, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.LoginURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// コネクション再利用のためボディを読み捨てる
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 64<<10))
		slog.Warn("login endpoint rejected request", "status", res.StatusCode, "url", c.cfg.LoginURL)
		return nil, ErrLoginFailed
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read login response: %w", err)
	}
	// 末尾に余分なデータがあるボディもJSONとして扱わない
	if !json.Valid(raw) {
		return nil, fmt.Errorf("decode login response: %w", ErrInvalidJSON)
	}
	// ボディにはアクセストークンが含まれるためサイズのみ記録する
	slog.Debug("login endpoint accepted request", "status", res.StatusCode, "bytes", len(raw))
	return json.RawMessage(raw), nil
}
