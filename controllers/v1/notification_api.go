package apiv1

import (
	"moc-tools-backend/controllers"
	notifyhandler "moc-tools-backend/lib/notify"
	"moc-tools-backend/middleware"
	apimodels "moc-tools-backend/models/api"
	notifyapimodels "moc-tools-backend/models/api/notify"

	"github.com/gofiber/fiber/v2"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notification", func(router fiber.Router) {
		router.Get("", controller.feed)
		router.Put("viewed", controller.markViewed)
		router.Get("settings", controller.listSettings)
		router.Put("settings", controller.updateSetting)
	})
}

// @Summary Лента уведомлений
// @Tags Уведомления
// @Description Уведомления текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]notifyapimodels.NotificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification [get]
func (c *notificationApiController) feed(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	list, err := notifyhandler.Instance.ListFeed(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Отметка о просмотре
// @Tags Уведомления
// @Description Отметка уведомлений просмотренными
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notifyapimodels.MarkViewedData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/viewed [put]
func (c *notificationApiController) markViewed(ctx *fiber.Ctx) error {
	var payload notifyapimodels.MarkViewedData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	if err := notifyhandler.Instance.MarkViewed(userID, payload.IDs); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Настройки уведомлений
// @Tags Уведомления
// @Description Настройки уведомлений текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]notifyapimodels.PushSettingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/settings [get]
func (c *notificationApiController) listSettings(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	list, err := notifyhandler.Instance.ListSettings(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения настроек уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Изменение настройки
// @Tags Уведомления
// @Description Изменение настройки уведомлений по коду события
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notifyapimodels.PushSettingUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/settings [put]
func (c *notificationApiController) updateSetting(ctx *fiber.Ctx) error {
	var payload notifyapimodels.PushSettingUpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	if err := notifyhandler.Instance.UpdateSetting(userID, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения настройки уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
