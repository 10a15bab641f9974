package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account_backend/internal/api"
	"account_backend/internal/feature/account/domain"
	"account_backend/internal/feature/account/domain/entity"
	"account_backend/internal/feature/account/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAccountUsecase is a mock implementation of the AccountUsecase interface.
type mockAccountUsecase struct {
	RegisterFunc  func(ctx context.Context, name, email, birthDate, password string) (*entity.User, error)
	LoginFunc     func(ctx context.Context, email, password string, rememberMe bool) (string, *entity.User, error)
	GetUserFunc   func(ctx context.Context, id uint) (*entity.User, error)
	ListUsersFunc func(ctx context.Context, quantity, offset int) ([]entity.User, usecase.PageInfo, error)
}

func (m *mockAccountUsecase) Register(ctx context.Context, name, email, birthDate, password string) (*entity.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, birthDate, password)
	}
	return nil, errors.New("register not mocked")
}

func (m *mockAccountUsecase) Login(ctx context.Context, email, password string, rememberMe bool) (string, *entity.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, rememberMe)
	}
	return "", nil, errors.New("login not mocked")
}

func (m *mockAccountUsecase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, errors.New("get user not mocked")
}

func (m *mockAccountUsecase) ListUsers(ctx context.Context, quantity, offset int) ([]entity.User, usecase.PageInfo, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx, quantity, offset)
	}
	return nil, usecase.PageInfo{}, errors.New("list users not mocked")
}

func setupRouter(uc AccountUsecase) *gin.Engine {
	h := NewAccountHandler(uc)
	r := gin.New()
	r.POST("/login", h.Login)
	r.POST("/users", h.CreateUser)
	r.GET("/users/:id", h.GetUser)
	r.GET("/users", h.ListUsers)
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAccountHandler_CreateUser(t *testing.T) {
	t.Run("success returns 201 with public fields only", func(t *testing.T) {
		uc := &mockAccountUsecase{
			RegisterFunc: func(ctx context.Context, name, email, birthDate, password string) (*entity.User, error) {
				return &entity.User{
					ID: 42, Name: name, Email: email, BirthDate: birthDate,
					PasswordHash: "secret-hash", Salt: "secret-salt",
				}, nil
			},
		}

		w := doJSON(t, setupRouter(uc), http.MethodPost, "/users", gin.H{
			"name": "Alice", "email": "alice@example.com", "birthDate": "04-04-1994", "password": "1234567abc",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp api.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint(42), resp.ID)
		assert.Equal(t, "Alice", resp.Name)
		assert.NotContains(t, w.Body.String(), "secret-hash", "hash must never be serialized")
		assert.NotContains(t, w.Body.String(), "secret-salt", "salt must never be serialized")
	})

	t.Run("missing fields fail binding with 400", func(t *testing.T) {
		uc := &mockAccountUsecase{
			RegisterFunc: func(ctx context.Context, name, email, birthDate, password string) (*entity.User, error) {
				t.Error("usecase must not be called when binding fails")
				return nil, nil
			},
		}

		w := doJSON(t, setupRouter(uc), http.MethodPost, "/users", gin.H{"email": "alice@example.com"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("domain errors keep their code and message", func(t *testing.T) {
		tests := []struct {
			name    string
			err     error
			code    int
			message string
		}{
			{"weak password", domain.NewInputError(domain.MsgWeakPassword), 400, domain.MsgWeakPassword},
			{"existing email", domain.NewInputError(domain.MsgExistingEmail), 400, domain.MsgExistingEmail},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := &mockAccountUsecase{
					RegisterFunc: func(ctx context.Context, name, email, birthDate, password string) (*entity.User, error) {
						return nil, tt.err
					},
				}

				w := doJSON(t, setupRouter(uc), http.MethodPost, "/users", gin.H{
					"name": "Alice", "email": "alice@example.com", "birthDate": "04-04-1994", "password": "x",
				})

				assert.Equal(t, tt.code, w.Code)

				var resp api.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.message, resp.Message)
				assert.Equal(t, tt.code, resp.Code)
			})
		}
	})

	t.Run("unexpected errors become an opaque 500", func(t *testing.T) {
		uc := &mockAccountUsecase{
			RegisterFunc: func(ctx context.Context, name, email, birthDate, password string) (*entity.User, error) {
				return nil, errors.New("connection refused to db.internal:5432")
			},
		}

		w := doJSON(t, setupRouter(uc), http.MethodPost, "/users", gin.H{
			"name": "Alice", "email": "alice@example.com", "birthDate": "04-04-1994", "password": "1234567abc",
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db.internal", "internal details must not leak")
	})
}

func TestAccountHandler_Login(t *testing.T) {
	t.Run("success returns token and user", func(t *testing.T) {
		uc := &mockAccountUsecase{
			LoginFunc: func(ctx context.Context, email, password string, rememberMe bool) (string, *entity.User, error) {
				assert.True(t, rememberMe)
				return "issued-token", &entity.User{ID: 1, Name: "Alice", Email: email, BirthDate: "04-04-1994"}, nil
			},
		}

		w := doJSON(t, setupRouter(uc), http.MethodPost, "/login", gin.H{
			"email": "alice@example.com", "password": "1234567abc", "rememberMe": true,
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp api.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "issued-token", resp.Token)
		assert.Equal(t, "alice@example.com", resp.User.Email)
	})

	t.Run("authorization failure returns 401 with the generic message", func(t *testing.T) {
		uc := &mockAccountUsecase{
			LoginFunc: func(ctx context.Context, email, password string, rememberMe bool) (string, *entity.User, error) {
				return "", nil, domain.NewAuthorizationError(domain.MsgInvalidInput)
			},
		}

		w := doJSON(t, setupRouter(uc), http.MethodPost, "/login", gin.H{
			"email": "alice@example.com", "password": "wrong12345",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.MsgInvalidInput, resp.Message)
		assert.Equal(t, domain.CodeAuthorization, resp.Code)
	})

	t.Run("pre-lookup validation failure returns 400 with the same message", func(t *testing.T) {
		uc := &mockAccountUsecase{
			LoginFunc: func(ctx context.Context, email, password string, rememberMe bool) (string, *entity.User, error) {
				return "", nil, domain.NewInputError(domain.MsgInvalidInput)
			},
		}

		w := doJSON(t, setupRouter(uc), http.MethodPost, "/login", gin.H{
			"email": "bad", "password": "short",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccountHandler_GetUser(t *testing.T) {
	t.Run("found user is returned with addresses", func(t *testing.T) {
		uc := &mockAccountUsecase{
			GetUserFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return &entity.User{
					ID: id, Name: "Alice", Email: "alice@example.com", BirthDate: "04-04-1994",
					Addresses: []entity.Address{{ID: 1, Street: "Main St", City: "Springfield"}},
				}, nil
			},
		}

		w := doJSON(t, setupRouter(uc), http.MethodGet, "/users/7", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp api.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint(7), resp.ID)
		require.Len(t, resp.Addresses, 1)
		assert.Equal(t, "Main St", resp.Addresses[0].Street)
	})

	t.Run("unknown user returns the user-does-not-exist error", func(t *testing.T) {
		uc := &mockAccountUsecase{
			GetUserFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return nil, domain.NewInputError(domain.MsgUserNotExist)
			},
		}

		w := doJSON(t, setupRouter(uc), http.MethodGet, "/users/999", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, domain.MsgUserNotExist, resp.Message)
	})

	t.Run("non-numeric id returns 400 without reaching the usecase", func(t *testing.T) {
		uc := &mockAccountUsecase{
			GetUserFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				t.Error("usecase must not be called for a malformed id")
				return nil, nil
			},
		}

		w := doJSON(t, setupRouter(uc), http.MethodGet, "/users/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccountHandler_ListUsers(t *testing.T) {
	t.Run("query parameters reach the usecase", func(t *testing.T) {
		uc := &mockAccountUsecase{
			ListUsersFunc: func(ctx context.Context, quantity, offset int) ([]entity.User, usecase.PageInfo, error) {
				assert.Equal(t, 5, quantity)
				assert.Equal(t, 20, offset)
				return []entity.User{{ID: 21, Name: "Uma"}}, usecase.PageInfo{
					TotalQuantity: 25, CurrentPage: 4, TotalPages: 5, HasPreviousPage: true,
				}, nil
			},
		}

		w := doJSON(t, setupRouter(uc), http.MethodGet, "/users?quantity=5&offset=20", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp api.ListUsersResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Users, 1)
		assert.Equal(t, int64(25), resp.Pagination.TotalQuantity)
		assert.Equal(t, 4, resp.Pagination.CurrentPage)
		assert.True(t, resp.Pagination.HasPreviousPage)
		assert.False(t, resp.Pagination.HasNextPage)
	})

	t.Run("missing parameters pass zero values for the usecase defaults", func(t *testing.T) {
		uc := &mockAccountUsecase{
			ListUsersFunc: func(ctx context.Context, quantity, offset int) ([]entity.User, usecase.PageInfo, error) {
				assert.Zero(t, quantity)
				assert.Zero(t, offset)
				return nil, usecase.PageInfo{}, nil
			},
		}

		w := doJSON(t, setupRouter(uc), http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("store failure becomes an opaque 500", func(t *testing.T) {
		uc := &mockAccountUsecase{} // default mock fails

		w := doJSON(t, setupRouter(uc), http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
