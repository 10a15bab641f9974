package usecase

import (
	"context"

	"account_backend/internal/feature/account/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	// 一意性の最終的な保証はストアのユニーク制約です。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを（住所を含めて）取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// List は名前昇順（同名はID昇順）で [offset, offset+limit) のウィンドウを返します。
	List(ctx context.Context, limit, offset int) ([]entity.User, error)

	// Count は登録済みユーザーの総数を返します。
	Count(ctx context.Context) (int64, error)

	// Delete は指定されたIDのユーザーを削除します（管理用途）。
	Delete(ctx context.Context, id uint) error
}
