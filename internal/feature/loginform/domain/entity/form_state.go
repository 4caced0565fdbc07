// Package entity はloginformフィーチャーのドメインエンティティを定義します。
package entity

import "errors"

// フォームのフィールド名。HTMLのinput name属性およびJSONキーと一致します。
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// ErrUnknownField は存在しないフィールド名で更新しようとした場合に返されます。
var ErrUnknownField = errors.New("unknown form field")

// FormState はログインフォームの入力値とフィードバックメッセージを保持します。
// 空文字列は「メッセージなし」を意味します。
type FormState struct {
	Email    string
	Password string

	// ErrorMessage はバリデーション失敗または送信失敗時に設定されます。
	ErrorMessage string

	// SuccessMessage はログイン成功が確認された場合のみ設定されます。
	SuccessMessage string
}

// WithField は指定フィールドだけを置き換えたコピーを返します。
// 他のフィールドは変更されません。バリデーションは行いません。
func (s FormState) WithField(name, value string) (FormState, error) {
	switch name {
	case FieldEmail:
		s.Email = value
	case FieldPassword:
		s.Password = value
	default:
		return s, ErrUnknownField
	}
	return s, nil
}

// HasError はエラーメッセージが表示対象かどうかを返します。
func (s FormState) HasError() bool {
	return s.ErrorMessage != ""
}

// HasSuccess は成功メッセージが表示対象かどうかを返します。
func (s FormState) HasSuccess() bool {
	return s.SuccessMessage != ""
}
