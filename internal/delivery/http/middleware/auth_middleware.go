package middleware

import (
	"context"
	"net/http"
	"strings"

	"hospital-management/internal/domain/entity"
	"hospital-management/internal/service"
	"hospital-management/pkg/jwt"
	"hospital-management/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	ActorKey   contextKey = "actor"
	TokenIDKey contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	sessions   service.SessionStore
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessions service.SessionStore, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
		log:        log,
	}
}

// Authenticate rejects requests without a valid, unrevoked access token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}
		m.serve(w, r, next)
	})
}

// Optional authenticates the caller when a bearer token is present and lets
// anonymous requests through unchanged. A present but invalid token is
// still rejected.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}
		m.serve(w, r, next)
	})
}

func (m *AuthMiddleware) serve(w http.ResponseWriter, r *http.Request, next http.Handler) {
	// Extract token from "Bearer <token>"
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Unauthorized(w, "Invalid authorization header format")
		return
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}

	if claims.TokenType != jwt.AccessToken {
		response.Unauthorized(w, "Invalid token type")
		return
	}

	// Check if token is still in the session store (not revoked)
	exists, err := m.sessions.Exists(r.Context(), claims.UserID, service.SessionAccess, claims.TokenID)
	if err != nil {
		m.log.Errorf("Failed to validate session: %+v", err)
		response.InternalServerError(w, "Failed to validate token")
		return
	}
	if !exists {
		response.Unauthorized(w, "Token has been revoked")
		return
	}

	actor := entity.Actor{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}
	next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor, claims.TokenID)))
}

// WithActor stores the authenticated caller and its access token ID.
func WithActor(ctx context.Context, actor entity.Actor, tokenID string) context.Context {
	ctx = context.WithValue(ctx, ActorKey, actor)
	return context.WithValue(ctx, TokenIDKey, tokenID)
}

// GetActorFromContext extracts the authenticated caller from context
func GetActorFromContext(ctx context.Context) (entity.Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(entity.Actor)
	return actor, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
