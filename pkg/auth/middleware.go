package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/prizepanda/pkg/utils"
)

type ContextKey string

const (
	AccountIDKey ContextKey = "accountID"
	ClaimsKey    ContextKey = "claims"
)

// AdminChecker re-reads the admin flag of an account on every admin request.
type AdminChecker interface {
	IsAdmin(ctx context.Context, accountID uuid.UUID) (bool, error)
}

type Middleware struct {
	jwt      JWTServiceInterface
	revoker  Revoker
	accounts AdminChecker
}

func NewMiddleware(jwt JWTServiceInterface, revoker Revoker, accounts AdminChecker) *Middleware {
	return &Middleware{
		jwt:      jwt,
		revoker:  revoker,
		accounts: accounts,
	}
}

func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		revoked, err := m.revoker.IsRevoked(r.Context(), claims.Id)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if revoked {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), AccountIDKey, claims.AccountID)
		ctx = context.WithValue(ctx, ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate. It accepts only elevated tokens
// whose account still carries the admin flag.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !claims.Admin {
			utils.RespondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}

		isAdmin, err := m.accounts.IsAdmin(r.Context(), claims.AccountID)
		if err != nil {
			zap.L().Error("failed to verify admin flag", zap.Stringer("account_id", claims.AccountID), zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if !isAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func AccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(AccountIDKey).(uuid.UUID)
	return id, ok
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*Claims)
	return claims, ok
}
