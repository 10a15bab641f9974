package token

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"account_backend/internal/api"
	"account_backend/internal/feature/account/domain"
)

// ContextEmail is the gin context key holding the verified account email.
const ContextEmail = "authEmail"

// Verifier validates a session token and returns the embedded email.
// Following Go convention: the interface is defined by the consumer
// (middleware), not the provider (Manager).
type Verifier interface {
	Verify(token string) (string, error)
}

// AuthRequired returns a gin middleware that gates protected routes.
// It reads the Authorization header (a leading "Bearer " prefix is accepted
// and stripped, a bare token also works), verifies it, and aborts with the
// domain error payload on failure: 401 expired for a valid-but-expired
// token, 401 unauthorized for everything else including a missing header.
// On success the verified email is stored under ContextEmail.
func AuthRequired(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if raw == "" {
			abortUnauthorized(c, domain.NewAuthorizationError(domain.MsgUnauthorized))
			return
		}

		email, err := verifier.Verify(raw)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				abortUnauthorized(c, domain.NewAuthorizationError(domain.MsgExpiredSession))
				return
			}
			abortUnauthorized(c, domain.NewAuthorizationError(domain.MsgUnauthorized))
			return
		}

		c.Set(ContextEmail, email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err *domain.Error) {
	c.AbortWithStatusJSON(err.Code, api.ErrorResponse{
		Message:        err.Message,
		Code:           err.Code,
		AdditionalInfo: err.AdditionalInfo,
	})
}
