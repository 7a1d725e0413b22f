package utils

import (
	"net/http"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/exceptions"
)

// RequireIdentity enforces that the authenticated user owns the resource
// being touched. Routes trusting caller-supplied IDs without this check
// would let any signed-in user act as anyone.
func RequireIdentity(r *http.Request, ownerID string) error {
	userID, _ := r.Context().Value(constvars.ContextUserIDKey).(string)
	if userID == "" || userID != ownerID {
		return exceptions.ErrIdentityMismatch(nil)
	}
	return nil
}

// RequireRole enforces the authenticated user's role.
func RequireRole(r *http.Request, role string) error {
	userRole, _ := r.Context().Value(constvars.ContextUserRoleKey).(string)
	if userRole != role {
		return exceptions.ErrIdentityMismatch(nil)
	}
	return nil
}
