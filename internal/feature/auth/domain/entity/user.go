// Package entity はauthフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// User は登録済みのユーザーを表します。
type User struct {
	ID uint `gorm:"primaryKey"`

	// Email はログインに使用するメールアドレスです。全ユーザーで一意です。
	Email string `gorm:"uniqueIndex;size:120;not null"`

	// Password はbcryptでハッシュ化されたパスワードです。平文は保存しません。
	Password string `gorm:"size:200;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}
