package middleware

import (
	"net/http"

	"dental-care-server/internal/domain/repository"
	"dental-care-server/pkg/response"

	"github.com/sirupsen/logrus"
)

// RoleMiddleware checks elevated privileges by looking the
// authenticated identity up in the store. Tokens carry only the email
// claim, so the role is never trusted from the token itself.
//
// Must be mounted after AuthMiddleware.Authenticate; without an
// authenticated identity in the context every request is rejected.
type RoleMiddleware struct {
	userRepo repository.UserRepository
	log      *logrus.Logger
}

func NewRoleMiddleware(userRepo repository.UserRepository, log *logrus.Logger) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
		log:      log,
	}
}

// RequireAdmin rejects with 403 unless the authenticated user's stored
// role is admin.
func (m *RoleMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := GetUserEmailFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Identity information not found")
			return
		}

		user, err := m.userRepo.FindByEmail(r.Context(), email)
		if err != nil {
			m.log.Warnf("Failed to look up user %s for role check: %+v", email, err)
			response.InternalServerError(w, "Failed to verify permissions")
			return
		}

		if user == nil || !user.IsAdmin() {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}

		next.ServeHTTP(w, r)
	})
}
