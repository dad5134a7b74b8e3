package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type ctxKey string

const (
	ctxOwnerID   ctxKey = "owner_id"
	ctxRequestID ctxKey = "request_id"
)

// TokenVerifier validates a bearer token and returns the owner id it
// belongs to.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// Authenticator resolves the Authorization header into an owner id in
// the request context. Requests without a valid token are rejected;
// ownership of the addressed cart/order is checked per handler.
func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				respondError(w, http.StatusUnauthorized, "unauthenticated", "missing bearer token")
				return
			}

			ownerID, err := verifier.VerifyToken(token)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "unauthenticated", "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxOwnerID, ownerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDMiddleware adds a unique request ID to each request.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%d", time.Now().UnixNano())
		}

		ctx := context.WithValue(r.Context(), ctxRequestID, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CORS reflects the configured origin for browser clients. An empty
// origin list disables cross-origin access.
func CORS(allowOrigins []string) func(http.Handler) http.Handler {
	allowAll := len(allowOrigins) == 1 && allowOrigins[0] == "*"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (allowAll || originAllowed(origin, allowOrigins)) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allow []string) bool {
	for _, a := range allow {
		if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(origin)) {
			return true
		}
	}
	return false
}

func ownerFromContext(ctx context.Context) string {
	if ownerID, ok := ctx.Value(ctxOwnerID).(string); ok {
		return ownerID
	}
	return ""
}

// requireOwner rejects requests whose authenticated identity does not
// match the cart/order owner being addressed. Only the owning client
// may read or mutate its cart.
func requireOwner(w http.ResponseWriter, r *http.Request, ownerID string) bool {
	authenticated := ownerFromContext(r.Context())
	if authenticated == "" {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "missing user authentication")
		return false
	}
	if authenticated != ownerID {
		respondError(w, http.StatusForbidden, "permission_denied", "cannot access another owner's cart")
		return false
	}
	return true
}
