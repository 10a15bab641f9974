package usecase

import (
	"context"
	"errors"
	"fmt"

	"account_backend/internal/feature/account/domain"
	"account_backend/internal/feature/account/domain/entity"
)

// PasswordHasher はパスワードのハッシュ導出と検証を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/hash）ではなくコンシューマー（usecase）が定義します。
type PasswordHasher interface {
	// Generate は新しいソルトとパスワードのハッシュを生成します。
	Generate(password string) (salt, hash string, err error)
	// Verify はパスワードを保存済みのソルトとハッシュに対して検証します。
	Verify(password, salt, expectedHash string) (bool, error)
}

// TokenIssuer はセッショントークンの発行を抽象化します。
type TokenIssuer interface {
	// Issue は指定されたメールアドレスの署名済みトークンを発行します。
	// extendedがtrueの場合は「ログイン状態を保持」用の長い有効期限を使用します。
	Issue(email string, extended bool) (string, error)
}

// ユーザー未検出時もハッシュ検証を必ず実行するためのダミー認証情報。
// レスポンス時間からアカウントの存在が推測されるのを緩和します。
const (
	dummySalt = "9b71d224bd62f3785d96d46ad3ea3d73"
	dummyHash = "a665a45920422f9d417e4867efdc4fb8a04a1f3fff1fa07e998e86f7f7a27ae3" +
		"4ef2ff665a45920422f9d417e4867efdc4fb8a04a1f3fff1fa07e998e86f7f7a"
)

// AccountUsecase はアカウントのビジネスロジックを実装します。
type AccountUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAccountUsecase はAccountUsecaseの新しいインスタンスを生成します。
func NewAccountUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *AccountUsecase {
	return &AccountUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register は新規ユーザーを登録します。
// チェックの順序は固定です: パスワード強度 → メール構文 → メール一意性 → 永続化。
// 弱いパスワードの送信でメールアドレスの登録状況が漏れないよう、強度チェックを先に行います。
func (u *AccountUsecase) Register(ctx context.Context, name, email, birthDate, password string) (*entity.User, error) {
	if !isPasswordStrong(password) {
		return nil, domain.NewInputError(domain.MsgWeakPassword)
	}
	if !isEmailValid(email) {
		return nil, domain.NewInputError(domain.MsgInvalidEmail)
	}

	// 事前チェック。最終的な一意性の保証はストアのユニーク制約が担います。
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.NewInputError(domain.MsgExistingEmail)
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	salt, hashed, err := u.generateHash(ctx, password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		BirthDate:    birthDate,
		PasswordHash: hashed,
		Salt:         salt,
	}
	if err := u.users.Create(ctx, user); err != nil {
		// 事前チェックとすれ違いで重複登録が競合した場合
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, domain.NewInputError(domain.MsgExistingEmail)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login はユーザーを認証し、成功時にセッショントークンとユーザーを返します。
// 未登録メールと誤パスワードは同一メッセージの401で区別できません。
// ユーザーが存在しない場合でもダミー認証情報で検証を実行し、応答時間の差を抑えます。
func (u *AccountUsecase) Login(ctx context.Context, email, password string, rememberMe bool) (string, *entity.User, error) {
	// ルックアップ前のバリデーション失敗は汎用メッセージの400
	if !isPasswordStrong(password) || !isEmailValid(email) {
		return "", nil, domain.NewInputError(domain.MsgInvalidInput)
	}

	user, findErr := u.users.FindByEmail(ctx, email)
	if findErr != nil && !errors.Is(findErr, ErrUserNotFound) {
		return "", nil, fmt.Errorf("failed to look up user: %w", findErr)
	}

	salt, expected := dummySalt, dummyHash
	if findErr == nil {
		salt, expected = user.Salt, user.PasswordHash
	}
	ok, err := u.verifyHash(ctx, password, salt, expected)
	if err != nil {
		return "", nil, fmt.Errorf("failed to verify password: %w", err)
	}

	if findErr != nil || !ok {
		return "", nil, domain.NewAuthorizationError(domain.MsgInvalidInput)
	}

	token, err := u.tokens.Issue(user.Email, rememberMe)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, user, nil
}

// GetUser はIDでユーザーを取得します。存在しない場合は400系のドメインエラーを返します。
func (u *AccountUsecase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, domain.NewInputError(domain.MsgUserNotExist)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListUsers は名前昇順のページングされたユーザー一覧とウィンドウ情報を返します。
// quantityが0以下の場合はDefaultPageSize、offsetが負の場合は0を使用します。
func (u *AccountUsecase) ListUsers(ctx context.Context, quantity, offset int) ([]entity.User, PageInfo, error) {
	if quantity <= 0 {
		quantity = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	total, err := u.users.Count(ctx)
	if err != nil {
		return nil, PageInfo{}, fmt.Errorf("failed to count users: %w", err)
	}

	users, err := u.users.List(ctx, quantity, offset)
	if err != nil {
		return nil, PageInfo{}, fmt.Errorf("failed to list users: %w", err)
	}

	return users, newPageInfo(total, quantity, offset), nil
}

type hashResult struct {
	salt string
	hash string
	ok   bool
	err  error
}

// generateHash はKDF導出を呼び出し元のデッドラインで制限して実行します。
// KDFは意図的に低速なため、キャンセル済みリクエストを待たせないようにします。
func (u *AccountUsecase) generateHash(ctx context.Context, password string) (string, string, error) {
	ch := make(chan hashResult, 1)
	go func() {
		salt, hash, err := u.hasher.Generate(password)
		ch <- hashResult{salt: salt, hash: hash, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", "", fmt.Errorf("password hashing aborted: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return "", "", fmt.Errorf("failed to hash password: %w", r.err)
		}
		return r.salt, r.hash, nil
	}
}

// verifyHash はKDF検証を呼び出し元のデッドラインで制限して実行します。
func (u *AccountUsecase) verifyHash(ctx context.Context, password, salt, expected string) (bool, error) {
	ch := make(chan hashResult, 1)
	go func() {
		ok, err := u.hasher.Verify(password, salt, expected)
		ch <- hashResult{ok: ok, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, fmt.Errorf("password verification aborted: %w", ctx.Err())
	case r := <-ch:
		return r.ok, r.err
	}
}
