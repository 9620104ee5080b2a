package httpapi

import (
	"context"
	"net/http"

	"github.com/AaronBlvde/wiki-platform/internal/common"
	"github.com/AaronBlvde/wiki-platform/internal/httpx"
)

type ctxKey int

const subjectKey ctxKey = 0

// authMiddleware resolves the Authorization header into a subject through
// the identity service and stores it in the request context. Requests
// without a valid token never reach a handler.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := s.resolver.Resolve(r.Context(), r.Header.Get(common.AuthorizationHeaderName))
		if err != nil {
			httpx.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), subjectKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// subjectFromContext returns the verified subject stored by authMiddleware.
func subjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(subjectKey).(string)
	return subject
}
