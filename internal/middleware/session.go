package middleware

import (
	"context"
	"net/http"

	"github.com/civictrack/admin/internal/models"
	"github.com/civictrack/admin/internal/session"
	"go.uber.org/zap"
)

const (
	userKey         contextKey = "sessionUser"
	sessionTokenKey contextKey = "sessionToken"
)

// UserResolver is the interface that wraps session to user resolution.
type UserResolver interface {
	// Method ResolveUser returns the user bound to a session token.
	//
	// If the session is absent, expired or its user no longer exists, "nil" will be returned without error.
	ResolveUser(ctx context.Context, token string) (*models.User, error)
}

// SessionMiddleware resolves the session cookie to a user on every request.
// Missing, tampered or expired cookies and resolution failures leave the request anonymous.
func SessionMiddleware(resolver UserResolver, codec *session.CookieCodec, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := codec.Read(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionTokenKey, token)

			user, err := resolver.ResolveUser(ctx, token)
			if err != nil {
				logger.Warn("failed to resolve session",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.Error(err),
				)
			}
			if user != nil {
				ctx = context.WithValue(ctx, userKey, user)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser retrieves the session user from context, nil when anonymous
func GetUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// GetSessionToken retrieves the verified session token from context
func GetSessionToken(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey).(string)
	return token
}

// WithUser returns a copy of ctx carrying the user
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}
