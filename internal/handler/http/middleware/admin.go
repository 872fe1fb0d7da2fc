package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/auth"
	"github.com/shiftwatch/attendance-backend-go/internal/domain/user"
	"github.com/shiftwatch/attendance-backend-go/internal/handler/http/response"
)

// AdminOnly passes staff and superuser accounts through, everyone else
// gets a 403.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		isStaff, _ := claims["is_staff"].(bool)
		isSuperuser, _ := claims["is_superuser"].(bool)
		if !isStaff && !isSuperuser {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
