package middleware

import (
	"errors"
	"strings"
	"time"

	"ai-jobmatch/internal/pkg/jwt"
	"ai-jobmatch/internal/session"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	// CtxSessionKey holds the resolved session.Session for the request.
	CtxSessionKey = "session"
	// CtxSIDKey holds the session id cookie value.
	CtxSIDKey = "sid"

	// SIDCookie names the anonymous session-id cookie. It identifies the
	// browser tab group, not the user; identity always comes from the
	// bearer token.
	SIDCookie = "jm_sid"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Resolve always succeeds: it classifies the request as authenticated or
// anonymous and stores the resulting session in Locals. Pages render for
// everyone; the route guard downstream decides what an anonymous session
// may see. It also guarantees the session-id cookie exists.
func (m *AuthMiddleware) Resolve() fiber.Handler {
	return func(c fiber.Ctx) error {
		sid := c.Cookies(SIDCookie)
		if sid == "" {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     SIDCookie,
				Value:    sid,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
				Expires:  time.Now().Add(24 * time.Hour),
			})
		}
		c.Locals(CtxSIDKey, sid)

		s := session.Anonymous()
		if token, ok := bearerTokenFromHeader(c.Get("Authorization")); ok {
			claims, err := m.jwt.ValidateToken(token)
			if err == nil {
				s = session.FromClaims(claims)
			}
		}
		c.Locals(CtxSessionKey, s)

		return c.Next()
	}
}

// RequireAuth gates the API endpoints that make no sense anonymously.
// Unlike Resolve, a present-but-bad token is an error here rather than an
// anonymous session, so clients can tell an expired token from a missing
// one.
func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}
		c.Locals(CtxSessionKey, session.FromClaims(claims))
		return c.Next()
	}
}

// SessionFromCtx reads the session Resolve stored, defaulting to an
// anonymous one.
func SessionFromCtx(c fiber.Ctx) session.Session {
	if s, ok := c.Locals(CtxSessionKey).(session.Session); ok {
		return s
	}
	return session.Anonymous()
}

// SIDFromCtx reads the session id Resolve stored.
func SIDFromCtx(c fiber.Ctx) string {
	if sid, ok := c.Locals(CtxSIDKey).(string); ok {
		return sid
	}
	return ""
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
