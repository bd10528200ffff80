package auth

import (
	"context"
	"net/http"
)

// tokenHeader is the conventional header carrying the credential string.
const tokenHeader = "x-auth-token"

// contextKey is a private type for request-context values.
type contextKey string

const userContextKey = contextKey("user_id")

// ExtractToken reads the credential string from the request. A missing
// header is a normal input mapped to ErrNoToken.
func ExtractToken(r *http.Request) (string, error) {
	token := r.Header.Get(tokenHeader)
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Middleware verifies the request's token and binds the identity to the
// request context. Rejections are generic on purpose: the response does
// not reveal whether the token was missing, malformed, or expired beyond
// the two messages existing clients expect.
func Middleware(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := ExtractToken(r)
			if err != nil {
				writeUnauthorized(w, "No token, authorization denied")
				return
			}
			userID, err := tokens.Verify(token)
			if err != nil {
				writeUnauthorized(w, "Token is not valid")
				return
			}
			ctx := ContextWithUser(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the identity bound by Middleware.
func UserFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userContextKey).(string)
	return userID, ok && userID != ""
}

// ContextWithUser binds an identity to a context. Tests use this to build
// authenticated requests without the middleware.
func ContextWithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"msg":"` + msg + `"}`))
}
