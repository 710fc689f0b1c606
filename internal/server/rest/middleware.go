package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/melodia/internal/common"
	"github.com/dmitrijs2005/melodia/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// ClaimsFromContext returns the token claims stored by the auth middleware.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok
}

// bearerToken returns the second space-separated field of the Authorization
// header. The scheme word itself is not checked.
func bearerToken(r *http.Request) string {
	parts := strings.Split(r.Header.Get(common.AuthorizationHeaderName), " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			jsonError(w, http.StatusUnauthorized, msgTokenMissing)
			return
		}

		claims, err := s.users.VerifyToken(token)
		if err != nil {
			s.logger.Warn(r.Context(), "token rejected", "error", err)
			jsonError(w, http.StatusForbidden, msgTokenInvalid)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}
