package entity

// Credentials は認証エンドポイントに送信するペイロードです。
// フォームの2つのフィールドだけを含みます。
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials は現在の入力値からログイン用ペイロードを生成します。
func (s FormState) Credentials() Credentials {
	return Credentials{Email: s.Email, Password: s.Password}
}
