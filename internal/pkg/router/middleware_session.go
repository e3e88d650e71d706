package router

import (
	"net/http"
	"strings"

	"github.com/chrono-hq/chrono-auth/internal/pkg/jwt"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "jwt"

// middlewareSession extracts the session token from the request and, when it
// verifies, stores the claims in the context.
//
// This middleware never rejects a request. A missing, malformed, or expired
// token simply leaves the request anonymous; endpoints that need a principal
// enforce that themselves. The session cookie is preferred, with a Bearer
// Authorization header as fallback for non-browser clients.
func middlewareSession(verifier jwt.JWT) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := sessionToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(tokenStr)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := jwt.SetAuth(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	p := strings.Fields(r.Header.Get("Authorization"))
	if len(p) == 2 && strings.EqualFold(p[0], "Bearer") {
		return p[1]
	}

	return ""
}
