package usecase

import (
	"regexp"
	"unicode/utf8"

	"loginform/internal/feature/loginform/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数（Unicodeコードポイント数）です。
	minPasswordLength = 8
)

// emailPattern は「@を含まない非空白文字列@非空白文字列.非空白文字列」の最小限の形を検証します。
// 空白文字にはASCII空白に加えて垂直タブ、Unicodeのスペース区切り文字、BOMを含めます。
var emailPattern = regexp.MustCompile(
	`^[^@\s\v\p{Z}\x{FEFF}]+@[^@\s\v\p{Z}\x{FEFF}]+\.[^@\s\v\p{Z}\x{FEFF}]+$`,
)

// IsValidEmail はメールアドレスが最小限の形式を満たすかどうかを返します。
// 到達可能性やドメインの存在は検証しません。
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Validate はフォームの入力値を検証し、最初に失敗したルールのメッセージを返します。
// メールアドレスのルールがパスワードのルールより先に評価されます。
// すべてのルールを満たす場合はtrueと空文字列を返します。
func Validate(state entity.FormState) (ok bool, message string) {
	if !IsValidEmail(state.Email) {
		return false, MsgInvalidEmail
	}
	if utf8.RuneCountInString(state.Password) < minPasswordLength {
		return false, MsgPasswordTooShort
	}
	return true, ""
}
