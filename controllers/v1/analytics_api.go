package apiv1

import (
	"moc-tools-backend/controllers"
	analyticshandler "moc-tools-backend/lib/analytics"
	"moc-tools-backend/middleware"
	apimodels "moc-tools-backend/models/api"
	mocapimodels "moc-tools-backend/models/api/moc"

	"github.com/gofiber/fiber/v2"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Post("dashboard", controller.dashboard)
	})
}

// @Summary Дашборд
// @Tags Аналитика
// @Description Сводная аналитика по заявкам за период
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 mocapimodels.AnalyticsFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=mocapimodels.DashboardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/dashboard [post]
func (c *analyticsApiController) dashboard(ctx *fiber.Ctx) error {
	var payload mocapimodels.AnalyticsFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	orgID := middleware.GetUserOrg(ctx)
	resp, err := analyticshandler.Instance.GetDashboard(orgID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения аналитики")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
