package middleware

import (
	apimodels "moc-tools-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

// AdminRequired - операция доступна только администратору организации
func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsOrgAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
