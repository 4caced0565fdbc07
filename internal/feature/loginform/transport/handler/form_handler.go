// Package handler はloginformフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"loginform/internal/feature/loginform/domain/entity"
	"loginform/internal/feature/loginform/transport/http/dto"
	"loginform/internal/feature/loginform/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageTemplate はページシェルのテンプレート名です。
const pageTemplate = "index.html"

// Templates はページシェルとフォーム部分テンプレートを読み込みます。
// gin.Engine.SetHTMLTemplateに渡して使用します。
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// LoginForm はフォームコントローラーの操作を定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type LoginForm interface {
	SetField(name, value string) error
	Submit(ctx context.Context, ev usecase.SubmitEvent) entity.FormState
}

// FormHandler はログインフォームの表示と送信を処理します。
// フォームコントローラーはリクエストごとに生成され、リクエスト終了とともに破棄されます。
type FormHandler struct {
	newForm func() LoginForm
	action  string
}

// NewFormHandler はFormHandlerの新しいインスタンスを生成します。
// newFormは送信ごとに新しいフォームコントローラーを返す必要があります。
func NewFormHandler(newForm func() LoginForm, action string) *FormHandler {
	if action == "" {
		action = "/"
	}
	return &FormHandler{newForm: newForm, action: action}
}

// pageData はテンプレートに渡す値です。
type pageData struct {
	Title  string
	Action string
	State  entity.FormState
}

// submitEvent はHTMLフォーム送信の既定動作（GET / へのリダイレクト）を表します。
// PreventDefaultが呼ばれた場合はインラインで結果を描画します。
type submitEvent struct {
	prevented bool
}

func (e *submitEvent) PreventDefault() { e.prevented = true }

// Show は空のフォームを描画します。
func (h *FormHandler) Show(c *gin.Context) {
	h.render(c, entity.FormState{})
}

// Submit はフォーム送信（application/x-www-form-urlencoded）を処理します。
// - email, passwordフィールドをコントローラーに反映
// - 送信試行を実行
// - 結果のメッセージ付きでフォームを再描画（常に200）
func (h *FormHandler) Submit(c *gin.Context) {
	form := h.newForm()
	if err := applyFields(form, c.PostForm(entity.FieldEmail), c.PostForm(entity.FieldPassword)); err != nil {
		slog.Error("failed to apply form fields", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	ev := &submitEvent{}
	state := form.Submit(c.Request.Context(), ev)
	if !ev.prevented {
		c.Redirect(http.StatusSeeOther, h.action)
		return
	}
	h.render(c, state)
}

// SubmitJSON はJSONでのフォーム送信を処理し、送信後のフォーム状態を返します。
// ログイン失敗はレスポンスボディのerrorで表現し、ステータスは200を返します。
func (h *FormHandler) SubmitJSON(c *gin.Context) {
	var req dto.LoginFormReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login form request malformed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	form := h.newForm()
	if err := applyFields(form, req.Email, req.Password); err != nil {
		slog.Error("failed to apply form fields", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	state := form.Submit(c.Request.Context(), &submitEvent{})
	c.JSON(http.StatusOK, dto.FormStateRes{
		Email:   state.Email,
		Error:   state.ErrorMessage,
		Success: state.SuccessMessage,
	})
}

func (h *FormHandler) render(c *gin.Context, state entity.FormState) {
	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, pageTemplate, pageData{
		Title:  "Login",
		Action: h.action,
		State:  state,
	})
}

func applyFields(form LoginForm, email, password string) error {
	if err := form.SetField(entity.FieldEmail, email); err != nil {
		return err
	}
	return form.SetField(entity.FieldPassword, password)
}
