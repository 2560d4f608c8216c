package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/buildtrack/buildtrack-api/pkg/jwt"
)

// Locals keys de la identidad autenticada en Fiber.
const (
	LocalUserID    = "user_id"
	LocalUserName  = "user_name"
	LocalUserEmail = "user_email"
	LocalRole      = "role"
)

// AuthMiddleware valida el Bearer Token JWT y carga la identidad a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respond(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respond(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respond(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		identity, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respond(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalUserID, identity.UserID)
		c.Locals(LocalUserName, identity.Name)
		c.Locals(LocalUserEmail, identity.Email)
		c.Locals(LocalRole, identity.Role)
		return c.Next()
	}
}

// RequireRole autoriza el acceso solo a los roles indicados. Debe ir después
// de AuthMiddleware. Un token sin claim de rol retorna 401 MISSING_ROLE.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return respond(c, fiber.StatusUnauthorized, "MISSING_ROLE", "el token no incluye rol")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return respond(c, fiber.StatusForbidden, "FORBIDDEN", "rol sin acceso a este recurso")
	}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetUserName devuelve el nombre del usuario autenticado.
func GetUserName(c *fiber.Ctx) string { return localString(c, LocalUserName) }

// GetUserEmail devuelve el email del usuario autenticado.
func GetUserEmail(c *fiber.Ctx) string { return localString(c, LocalUserEmail) }

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// identityFrom reconstruye la identidad completa desde los locals.
func identityFrom(c *fiber.Ctx) jwt.Identity {
	return jwt.Identity{
		UserID: GetUserID(c),
		Name:   GetUserName(c),
		Email:  GetUserEmail(c),
		Role:   GetRole(c),
	}
}
