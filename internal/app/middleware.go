package app

import (
	"context"
	"net/http"

	"boxdrop/internal/apierr"
	"boxdrop/internal/auth"
)

type contextKey string

const sessionIDKey contextKey = "sessionID"

// RequireBroker rejects requests that do not carry a valid opaque
// session token. The token is read from the Authorization header first,
// then from the token query param.
func RequireBroker(tokens *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				token = r.URL.Query().Get("token")
			}
			if token == "" {
				writeError(w, apierr.Unauthenticated("Please login to continue"))
				return
			}
			sessionID, err := tokens.Verify(token)
			if err != nil {
				writeError(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the session ID set by RequireBroker, if any.
func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok
}
