// Package handler はaccountフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"account_backend/internal/api"
	"account_backend/internal/feature/account/domain"
	"account_backend/internal/feature/account/domain/entity"
	"account_backend/internal/feature/account/usecase"
)

// AccountUsecase はアカウント操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AccountUsecase interface {
	// Register は新規ユーザーを登録し、永続化されたユーザーを返します。
	Register(ctx context.Context, name, email, birthDate, password string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にセッショントークンとユーザーを返します。
	Login(ctx context.Context, email, password string, rememberMe bool) (string, *entity.User, error)
	// GetUser はIDでユーザーを取得します。
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	// ListUsers はページングされたユーザー一覧とウィンドウ情報を返します。
	ListUsers(ctx context.Context, quantity, offset int) ([]entity.User, usecase.PageInfo, error)
}

// AccountHandler はアカウント操作のHTTPリクエストを処理します。
type AccountHandler struct {
	accounts AccountUsecase
}

// NewAccountHandler はAccountHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAccountUsecaseを注入します。
func NewAccountHandler(accounts AccountUsecase) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// CreateUser はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをCreateUserRequestにバインド
// - バリデーション・業務エラーはドメインエラーのコードで返却
// - 成功時は201と公開フィールドを返却（ハッシュとソルトは返さない）
func (h *AccountHandler) CreateUser(c *gin.Context) {
	var req api.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user binding failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request", Code: http.StatusBadRequest})
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), req.Name, req.Email, req.BirthDate, req.Password)
	if err != nil {
		slog.Warn("create user failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		writeError(c, err)
		return
	}

	slog.Info("user created", "id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// 認証失敗の理由（未登録メールか誤パスワードか）はレスポンスから区別できません。
func (h *AccountHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login binding failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request", Code: http.StatusBadRequest})
		return
	}

	token, user, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password, req.RememberMe)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		writeError(c, err)
		return
	}

	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// GetUser は単一ユーザー取得APIエンドポイントを処理します。
//
// エンドポイント例:
// GET /users/42
func (h *AccountHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request", Code: http.StatusBadRequest})
		return
	}

	user, err := h.accounts.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// ListUsers はページングされたユーザー一覧APIエンドポイントを処理します。
// 未指定・不正なパラメータはユースケース側のデフォルト値に正規化されます。
//
// エンドポイント例:
// GET /users?quantity=10&offset=20
func (h *AccountHandler) ListUsers(c *gin.Context) {
	quantity, _ := strconv.Atoi(c.DefaultQuery("quantity", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, page, err := h.accounts.ListUsers(c.Request.Context(), quantity, offset)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]api.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, api.ListUsersResponse{
		Users: out,
		Pagination: api.PaginationResponse{
			TotalQuantity:   page.TotalQuantity,
			CurrentPage:     page.CurrentPage,
			TotalPages:      page.TotalPages,
			HasNextPage:     page.HasNextPage,
			HasPreviousPage: page.HasPreviousPage,
		},
	})
}

// writeError はドメインエラーを分類どおりのコードとペイロードで返します。
// 想定外のエラーは内部情報を漏らさないよう不透明な500に落とします。
func writeError(c *gin.Context, err error) {
	if domErr, ok := domain.AsError(err); ok {
		c.JSON(domErr.Code, api.ErrorResponse{
			Message:        domErr.Message,
			Code:           domErr.Code,
			AdditionalInfo: domErr.AdditionalInfo,
		})
		return
	}

	slog.Error("unexpected error", "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{
		Message: "internal server error",
		Code:    http.StatusInternalServerError,
	})
}

// toUserResponse はエンティティを公開フィールドのみのレスポンスに変換します。
func toUserResponse(u *entity.User) api.UserResponse {
	resp := api.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		BirthDate: u.BirthDate,
	}
	for _, a := range u.Addresses {
		resp.Addresses = append(resp.Addresses, api.AddressResponse{
			ID:           a.ID,
			PostalCode:   a.PostalCode,
			Street:       a.Street,
			StreetNumber: a.StreetNumber,
			Complement:   a.Complement,
			Neighborhood: a.Neighborhood,
			City:         a.City,
			State:        a.State,
		})
	}
	return resp
}
