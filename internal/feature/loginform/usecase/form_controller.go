package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"loginform/internal/feature/loginform/domain/entity"
)

// Authenticator は認証エンドポイントへのログイン要求を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type Authenticator interface {
	// Login は資格情報を送信し、成功時にJSONとして検証済みのレスポンスボディを返します。
	// 2xx以外のレスポンス、通信エラー、デコードエラーはすべてerrorとして返します。
	Login(ctx context.Context, creds entity.Credentials) (json.RawMessage, error)
}

// SubmitEvent は送信を引き起こしたイベントです。
// フォーム既定の遷移動作を抑止する操作だけを公開します。
type SubmitEvent interface {
	PreventDefault()
}

// FormController はフォームの状態・検証・送信ライフサイクルを管理します。
// 1つのインスタンスは1つのマウントされたフォームに対応します。
type FormController struct {
	auth Authenticator

	mu    sync.Mutex
	state entity.FormState
	// seq は送信試行ごとに増加し、最新の試行以外のレスポンスを破棄するために使います。
	seq uint64
}

// NewFormController はFormControllerの新しいインスタンスを生成します。
func NewFormController(auth Authenticator) *FormController {
	return &FormController{auth: auth}
}

// State は現在のFormStateのスナップショットを返します。
func (c *FormController) State() entity.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetField は1つのフィールドを更新します。他のフィールドとメッセージは変更しません。
func (c *FormController) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.state.WithField(name, value)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

// Validate はバリデーションを実行し、結果をErrorMessageに反映します。
// 失敗時は対応するメッセージを設定し、成功時はErrorMessageをクリアします。
func (c *FormController) Validate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateLocked()
}

func (c *FormController) validateLocked() bool {
	ok, msg := Validate(c.state)
	c.state.ErrorMessage = msg
	return ok
}

// Submit は1回の送信試行を実行し、完了時点のFormStateを返します。
//   - イベントの既定動作を抑止
//   - SuccessMessageをクリア
//   - バリデーション失敗時はネットワーク呼び出しを行わずに終了
//   - 認証エンドポイントへPOSTし、結果をメッセージに反映
//
// 実行中に新しい送信試行が始まった場合、古い試行のレスポンスは破棄されます。
func (c *FormController) Submit(ctx context.Context, ev SubmitEvent) entity.FormState {
	if ev != nil {
		ev.PreventDefault()
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state.SuccessMessage = ""
	if !c.validateLocked() {
		snapshot := c.state
		c.mu.Unlock()
		slog.Debug("login form validation failed", "seq", seq, "reason", snapshot.ErrorMessage)
		return snapshot
	}
	creds := c.state.Credentials()
	c.mu.Unlock()

	body, err := c.auth.Login(ctx, creds)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		slog.Debug("discarding stale login response", "seq", seq, "latest", c.seq, "error", err)
		return c.state
	}

	if err != nil {
		slog.Warn("login attempt failed", "error", err, "email", creds.Email)
		c.state.SuccessMessage = ""
		c.state.ErrorMessage = failureMessage(err)
		return c.state
	}

	slog.Info("login attempt succeeded", "email", creds.Email, "response_bytes", len(body))
	c.state.ErrorMessage = ""
	c.state.SuccessMessage = MsgLoginSuccess
	return c.state
}

// failureMessage はエラーのメッセージを返します。メッセージが空の場合は汎用メッセージを返します。
func failureMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgGenericFailure
}
