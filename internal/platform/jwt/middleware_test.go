package jwtmw

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

const middlewareSecret = "middleware-secret"

// newProtectedRouter は/meをAuthRequiredで保護し、コンテキストに設定された値をそのまま返すルーターです。
func newProtectedRouter(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthRequired(secret), func(c *gin.Context) {
		_, hasID := c.Get(ContextUserID)
		c.JSON(http.StatusOK, gin.H{
			"has_user_id": hasID,
			"user_id":     c.GetUint(ContextUserID),
			"email":       c.GetString(ContextEmail),
		})
	})
	return r
}

func callMe(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func signClaims(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestAuthRequired_Rejects(t *testing.T) {
	t.Parallel()

	now := time.Now()
	valid := jwt.MapClaims{"sub": float64(1), "email": "a@b.co", "exp": now.Add(time.Hour).Unix()}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantError  string
	}{
		{"no header", "", http.StatusUnauthorized, "missing bearer token"},
		{"not a bearer scheme", "Token abc", http.StatusUnauthorized, "missing bearer token"},
		{"garbage token", "Bearer abc.def", http.StatusUnauthorized, "invalid token"},
		{
			"signed by a different secret",
			"Bearer " + signClaims(t, jwt.SigningMethodHS256, []byte("other-secret"), valid),
			http.StatusUnauthorized, "invalid token",
		},
		{
			"signed with the public development secret",
			"Bearer " + signClaims(t, jwt.SigningMethodHS256, []byte(devSecret), valid),
			http.StatusUnauthorized, "invalid token",
		},
		{
			"expired",
			"Bearer " + signClaims(t, jwt.SigningMethodHS256, []byte(middlewareSecret),
				jwt.MapClaims{"sub": float64(1), "exp": now.Add(-time.Minute).Unix()}),
			http.StatusUnauthorized, "invalid token",
		},
		{
			"unsigned",
			"Bearer " + signClaims(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid),
			http.StatusUnauthorized, "invalid token",
		},
	}

	r := newProtectedRouter(middlewareSecret)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := callMe(r, tt.authHeader)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, `{"error":"`+tt.wantError+`"}`, w.Body.String())
		})
	}
}

func TestAuthRequired_EmptySecretFailsClosed(t *testing.T) {
	t.Parallel()

	// 空のシークレットで署名されたトークンでも通過させない
	token := signClaims(t, jwt.SigningMethodHS256, []byte(""), jwt.MapClaims{"sub": float64(1)})

	w := callMe(newProtectedRouter(""), "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"server misconfigured"}`, w.Body.String())
}

func TestAuthRequired_SetsContextFromClaims(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Hour).Unix()
	tests := []struct {
		name       string
		claims     jwt.MapClaims
		wantHasID  bool
		wantUserID uint
		wantEmail  string
	}{
		{"subject and email", jwt.MapClaims{"sub": float64(9), "email": "nine@example.com", "exp": exp}, true, 9, "nine@example.com"},
		{"no email claim", jwt.MapClaims{"sub": float64(3), "exp": exp}, true, 3, ""},
		{"zero subject is ignored", jwt.MapClaims{"sub": float64(0), "email": "zero@example.com", "exp": exp}, false, 0, "zero@example.com"},
	}

	r := newProtectedRouter(middlewareSecret)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			token := signClaims(t, jwt.SigningMethodHS256, []byte(middlewareSecret), tt.claims)
			w := callMe(r, "Bearer "+token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var got struct {
				HasUserID bool   `json:"has_user_id"`
				UserID    uint   `json:"user_id"`
				Email     string `json:"email"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.wantHasID, got.HasUserID)
			assert.Equal(t, tt.wantUserID, got.UserID)
			assert.Equal(t, tt.wantEmail, got.Email)
		})
	}
}

func TestAuthRequired_AcceptsGeneratorTokens(t *testing.T) {
	t.Parallel()

	token, err := NewGenerator(middlewareSecret, time.Hour).GenerateToken(5, "five@example.com")
	require.NoError(t, err)

	w := callMe(newProtectedRouter(middlewareSecret), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"has_user_id":true,"user_id":5,"email":"five@example.com"}`, w.Body.String())

	// 別のシークレットを注入したインスタンスでは受理されない
	w = callMe(newProtectedRouter("another-deployment"), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
