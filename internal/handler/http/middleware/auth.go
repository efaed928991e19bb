package middleware

import (
	"net/http"

	"github.com/bengkelworks/shop-backend-go/internal/domain/auth"
	"github.com/bengkelworks/shop-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired admits only access tokens. Refresh and board tokens share the
// signing key, so the claim set is checked, not just the signature.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if kind, _ := claims["type"].(string); kind != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if id, _ := claims["employee_id"].(string); id == "" {
				response.HandleError(w, auth.ErrEmployeeClaimMissing)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
