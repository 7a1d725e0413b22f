package middlewares

import (
	"context"
	"net/http"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/exceptions"
	"panchkarma-service/internal/pkg/utils"
	"strings"
)

func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.AuthBearerPrefix)
		claims, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextUserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, constvars.ContextUserRoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
