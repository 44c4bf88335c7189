package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"ideahub-backend/pkg/auth"
	"ideahub-backend/pkg/common"
	pkgerrors "ideahub-backend/pkg/errors"
)

// Authenticate resolves the request's bearer token to a user identity and
// rejects the request when no valid token is present. Handlers downstream
// read the identity with auth.GetUserFromContext.
func Authenticate(validator *auth.JWTValidator, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				common.RespondAppError(w, pkgerrors.NewUnauthenticatedError("missing authentication token"))
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.Warn("invalid token",
					zap.Error(err),
					zap.String("path", r.URL.Path),
				)

				switch err {
				case auth.ErrExpiredToken:
					common.RespondAppError(w, pkgerrors.NewUnauthenticatedError("token has expired"))
				case auth.ErrInvalidSignature:
					common.RespondAppError(w, pkgerrors.NewUnauthenticatedError("invalid token signature"))
				default:
					common.RespondAppError(w, pkgerrors.NewUnauthenticatedError("invalid token"))
				}
				return
			}

			userCtx := &auth.UserContext{
				UserID: claims.UserID,
				Email:  claims.Email,
			}
			ctx := auth.SetUserInContext(r.Context(), userCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthenticate attaches the identity when a valid token is present
// but lets anonymous requests through. Used on public read endpoints that
// render viewer-relative state (liked, following) when a viewer exists.
func OptionalAuthenticate(validator *auth.JWTValidator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractToken(r); token != "" {
				if claims, err := validator.ValidateToken(token); err == nil {
					ctx := auth.SetUserInContext(r.Context(), &auth.UserContext{
						UserID: claims.UserID,
						Email:  claims.Email,
					})
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractToken extracts the session token from the Authorization header or
// the auth cookie
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
		return authHeader
	}

	if cookie, err := r.Cookie("auth_token"); err == nil {
		return cookie.Value
	}
	return ""
}
