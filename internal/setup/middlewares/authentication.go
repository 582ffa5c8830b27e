package middlewares

import (
	"net/http"
	"strings"

	"github.com/ledgerly/finance-tracker-backend/internal/utils"
)

// VerifyAccessToken resolves the session token to a user id and stores it
// on the UserId header for the controllers. The token comes from the
// Authorization header or, for browser sessions, from the NextAuth cookie.
func VerifyAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var authorization string
		if header := r.Header.Get("Authorization"); header != "" {
			authorization = header
		} else if cookie, err := r.Cookie("__Secure-next-auth.session-token"); err == nil {
			authorization = cookie.Value
		} else if cookie, err := r.Cookie("next-auth.session-token"); err == nil {
			authorization = cookie.Value
		}

		if authorization == "" {
			http.Error(w, "Missing or invalid access token", http.StatusUnauthorized)
			return
		}

		authorization = strings.TrimPrefix(authorization, "Bearer ")

		claims, err := utils.NewAccessTokenUtil().DecodeToken(authorization)
		if err != nil {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		r.Header.Set("UserId", sub)

		next.ServeHTTP(w, r)
	})
}
