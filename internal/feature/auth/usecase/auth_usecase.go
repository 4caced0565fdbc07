package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"loginform/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数です。ログインフォームの検証と一致させます。
	minPasswordLength = 8

	// dummyHash はユーザーが存在しない場合にも比較を行うためのbcryptハッシュです。
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーを保存します。メールアドレスが重複する場合はErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail はメールアドレスでユーザーを取得します。存在しない場合はErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID はIDでユーザーを取得します。存在しない場合はErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenGenerator はアクセストークン生成のインターフェースを定義します。
type TokenGenerator interface {
	GenerateToken(userID uint, email string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	tokens TokenGenerator
	cost   int
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenGenerator) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
	}
}

// WithHashCost はbcryptのコストを変更します。テストで処理時間を短縮するために使います。
func (u *authUsecase) WithHashCost(cost int) *authUsecase {
	u.cost = cost
	return u
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
// 既に同じメールアドレスが登録されている場合はErrEmailAlreadyExistsを返します。
func (u *authUsecase) Register(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrWeakPassword
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return u.users.Create(ctx, &entity.User{Email: email, Password: string(hashed)})
}

// Login はユーザーを認証し、成功時にアクセストークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Profile はトークンから得たユーザーIDでユーザーを取得します。
func (u *authUsecase) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}
