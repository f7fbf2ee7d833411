package middleware

import (
	"moc-tools-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func getClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func getClaimString(ctx *fiber.Ctx, key string) string {
	value, ok := getClaims(ctx)[key].(string)
	if !ok {
		return ""
	}
	return value
}

func GetUserID(ctx *fiber.Ctx) string {
	return getClaimString(ctx, "user_id")
}

func GetUserOrg(ctx *fiber.Ctx) string {
	return getClaimString(ctx, "org_id")
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(getClaimString(ctx, "role"))
}
