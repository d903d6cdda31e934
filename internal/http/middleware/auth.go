package middleware

import (
	"io"
	"net/http"

	"shegamart/internal/auth"
	"shegamart/internal/domain"
	"shegamart/internal/logx"
)

// TokenParser validates an Authorization header value.
type TokenParser interface {
	ParseBearer(header string) (*auth.Principal, error)
}

// Authenticate requires a valid bearer token and stores the caller's principal in the request context.
func Authenticate(parser TokenParser, logger logx.Logger) func(http.Handler) http.Handler {
	logger = logx.OrNop(logger)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := parser.ParseBearer(r.Header.Get("Authorization"))
			if err != nil {
				logger.Debug("authentication failed",
					logx.String("path", r.URL.Path),
					logx.Err(err),
				)
				reject(logger, w, http.StatusUnauthorized, `{"error":"unauthorized"}`)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireRole lets through only callers holding one of roles. Must run after Authenticate.
func RequireRole(logger logx.Logger, roles ...domain.Role) func(http.Handler) http.Handler {
	logger = logx.OrNop(logger)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := auth.FromContext(r.Context())
			if !ok {
				reject(logger, w, http.StatusUnauthorized, `{"error":"unauthorized"}`)
				return
			}
			if !p.HasRole(roles...) {
				logger.Warn("role check failed",
					logx.Int64("account_id", p.AccountID),
					logx.String("role", string(p.Role)),
					logx.String("path", r.URL.Path),
				)
				reject(logger, w, http.StatusForbidden, `{"error":"forbidden"}`)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func reject(logger logx.Logger, w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := io.WriteString(w, body); err != nil {
		logger.Debug("auth response write failed", logx.Err(err))
	}
}
