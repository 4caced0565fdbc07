// Package http provides the outbound HTTP client shared by adapters.
package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultTimeout bounds a whole request when the caller passes a non-positive timeout.
const DefaultTimeout = 10 * time.Second

// NewHTTPClient は外部呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: HTTP_PROXYなどの環境変数を尊重
//   - Dialer.Timeout: TCP接続タイムアウト
//   - IdleConnTimeout / TLSHandshakeTimeout: 接続の再利用とハンドシェイクの上限
//   - Client.Timeout: リクエスト全体のタイムアウト（0以下ならDefaultTimeout）
//
// http.DefaultClientにはタイムアウトがないため使用しないこと。
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        16,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
