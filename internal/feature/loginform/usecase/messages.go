// Package usecase はログインフォームのコントローラー（バリデーションと送信ライフサイクル）を実装します。
package usecase

// フォーム下部に表示するフィードバック文言。
const (
	MsgInvalidEmail     = "Please enter a valid email address."
	MsgPasswordTooShort = "Password must be at least 8 characters long."
	MsgLoginSuccess     = "Login successful!"
	MsgGenericFailure   = "Something went wrong."
)
