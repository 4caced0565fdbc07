// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CredentialsReq は/registerと/loginのリクエストボディです。
// 両フィールドとも必須です。形式の検証はユースケース側で行います。
type CredentialsReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
