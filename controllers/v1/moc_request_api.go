package apiv1

import (
	"context"
	"fmt"
	"io"
	"time"

	"moc-tools-backend/controllers"
	aihandler "moc-tools-backend/lib/ai"
	filestorage "moc-tools-backend/lib/file-storage"
	mochistoryhandler "moc-tools-backend/lib/moc-history"
	mocreqhandler "moc-tools-backend/lib/moc-req"
	"moc-tools-backend/lib/utils/helpers"
	"moc-tools-backend/middleware"
	apimodels "moc-tools-backend/models/api"
	mocapimodels "moc-tools-backend/models/api/moc"

	"github.com/gofiber/fiber/v2"
)

type mocReqApiController struct {
	controllers.BaseAPIController
}

func InitMocRequestApiRouters(app *fiber.App) {
	controller := mocReqApiController{}
	app.Route("moc_request", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Put("export", controller.exportRegister)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("", controller.update)
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Put("submit", controller.submit) // подать на согласование
			idRoute.Put("approve", controller.approve)
			idRoute.Put("reject", controller.reject)
			idRoute.Put("request_changes", controller.requestChanges)
			idRoute.Put("implement", controller.implement) // отметить внедрение
			idRoute.Post("comment", controller.comment)
			idRoute.Get("history", controller.history)
			idRoute.Get("card", controller.exportCard)
			idRoute.Get("risk_suggest", controller.riskSuggest)
			idRoute.Route("file", func(fileRoute fiber.Router) {
				fileRoute.Post("", controller.uploadFile)
				fileRoute.Get("", controller.listFiles)
				fileRoute.Get(":file_id", controller.downloadFile)
				fileRoute.Delete(":file_id", controller.deleteFile)
			})
		})
	})
}

// @Summary Создание заявки
// @Tags Заявка на изменение
// @Description Создание заявки на изменение
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 mocapimodels.MocRequestCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request [post]
func (c *mocReqApiController) create(ctx *fiber.Ctx) error {
	var payload mocapimodels.MocRequestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	id, hMsg, err := mocreqhandler.Instance.Create(orgID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление заявки
// @Tags Заявка на изменение
// @Description Обновление заявки, доступно автору в статусах черновик и на согласовании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 mocapimodels.MocRequestEditData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id} [put]
func (c *mocReqApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload mocapimodels.MocRequestEditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := mocreqhandler.Instance.Update(orgID, id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления заявки")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Заявка на изменение
// @Description Получение заявки по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=mocapimodels.MocRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id} [get]
func (c *mocReqApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	orgID := middleware.GetUserOrg(ctx)
	resp, err := mocreqhandler.Instance.GetByID(orgID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление
// @Tags Заявка на изменение
// @Description Удаление черновика заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id} [delete]
func (c *mocReqApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := mocreqhandler.Instance.Delete(orgID, id, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления заявки")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список заявок
// @Tags Заявка на изменение
// @Description Список заявок с фильтром
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 mocapimodels.MocFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]mocapimodels.MocRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/list [post]
func (c *mocReqApiController) list(ctx *fiber.Ctx) error {
	var payload mocapimodels.MocFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	orgID := middleware.GetUserOrg(ctx)
	list, rowCount, err := mocreqhandler.Instance.List(orgID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Подача на согласование
// @Tags Заявка на изменение
// @Description Подача черновика на согласование, заявке присваивается номер
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id}/submit [put]
func (c *mocReqApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := mocreqhandler.Instance.Submit(ctx.UserContext(), orgID, id, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка подачи заявки на согласование")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Согласование
// @Tags Заявка на изменение
// @Description Положительное решение согласующего по заявке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 mocapimodels.ApprovalDecision	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id}/approve [put]
func (c *mocReqApiController) approve(ctx *fiber.Ctx) error {
	return c.decide(ctx, mocreqhandler.Instance.Approve, "Ошибка согласования заявки")
}

// @Summary Отклонение
// @Tags Заявка на изменение
// @Description Отклонение заявки согласующим, комментарий обязателен
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 mocapimodels.ApprovalDecision	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id}/reject [put]
func (c *mocReqApiController) reject(ctx *fiber.Ctx) error {
	return c.decide(ctx, mocreqhandler.Instance.Reject, "Ошибка отклонения заявки")
}

// @Summary Запрос изменений
// @Tags Заявка на изменение
// @Description Возврат заявки на доработку, комментарий обязателен
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 mocapimodels.ApprovalDecision	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id}/request_changes [put]
func (c *mocReqApiController) requestChanges(ctx *fiber.Ctx) error {
	return c.decide(ctx, mocreqhandler.Instance.RequestChanges, "Ошибка возврата заявки на доработку")
}

func (c *mocReqApiController) decide(ctx *fiber.Ctx,
	action func(ctx context.Context, orgID, id, userID string, data mocapimodels.ApprovalDecision) (string, error),
	errMsg string) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload mocapimodels.ApprovalDecision
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := action(ctx.UserContext(), orgID, id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, errMsg)
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Внедрение изменения
// @Tags Заявка на изменение
// @Description Перевод согласованной заявки во внедренные, доступно администратору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id}/implement [put]
func (c *mocReqApiController) implement(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if !middleware.GetUserRole(ctx).IsOrgAdmin() {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция доступна только администратору"))
	}

	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := mocreqhandler.Instance.Implement(orgID, id, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка перевода заявки во внедренные")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Комментарий
// @Tags Заявка на изменение
// @Description Добавление комментария к заявке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 mocapimodels.CommentData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id}/comment [post]
func (c *mocReqApiController) comment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload mocapimodels.CommentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	hMsg, err := mocreqhandler.Instance.AddComment(orgID, id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления комментария")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Выгрузка реестра
// @Tags Заявка на изменение
// @Description Выгрузка реестра заявок в Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 mocapimodels.MocFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/export [put]
func (c *mocReqApiController) exportRegister(ctx *fiber.Ctx) error {
	var payload mocapimodels.MocFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	orgID := middleware.GetUserOrg(ctx)
	data, err := mocreqhandler.Instance.ExportRegister(orgID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки реестра заявок в Excel")
	}
	fileName := fmt.Sprintf("moc-register-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Карточка заявки
// @Tags Заявка на изменение
// @Description Выгрузка карточки заявки в PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id}/card [get]
func (c *mocReqApiController) exportCard(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	orgID := middleware.GetUserOrg(ctx)
	body, number, err := mocreqhandler.Instance.ExportCard(orgID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки карточки заявки в PDF")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+number+`.pdf"`)
	return ctx.Send(body)
}

// @Summary Подсказка по оценке риска
// @Tags Заявка на изменение
// @Description Генерация подсказки по оценке риска изменения через ИИ
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id}/risk_suggest [get]
func (c *mocReqApiController) riskSuggest(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	orgID := middleware.GetUserOrg(ctx)
	suggestion, hMsg, err := aihandler.Instance.SuggestRiskAssessment(orgID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка генерации подсказки по оценке риска")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(suggestion))
}

// @Summary Загрузка файла
// @Tags Заявка на изменение
// @Description Загрузка файла к заявке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file 	true 	"Файл"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id}/file [post]
func (c *mocReqApiController) uploadFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при получении файла")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при чтении файла")
	}

	orgID := middleware.GetUserOrg(ctx)
	userID := middleware.GetUserID(ctx)
	contentType := helpers.GetFileContentType(file)
	fileID, err := filestorage.Instance.Upload(ctx.UserContext(), orgID, id, userID, file.Filename, contentType, fileBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения файла заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Список файлов
// @Tags Заявка на изменение
// @Description Список файлов заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]mocapimodels.FileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id}/file [get]
func (c *mocReqApiController) listFiles(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	orgID := middleware.GetUserOrg(ctx)
	list, err := filestorage.Instance.List(orgID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка файлов заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Скачивание файла
// @Tags Заявка на изменение
// @Description Скачивание файла заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   file_id     		path    string  				    	true         "file ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id}/file/{file_id} [get]
func (c *mocReqApiController) downloadFile(ctx *fiber.Ctx) error {
	fileID, err := c.GetIDByKey(ctx, "file_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	orgID := middleware.GetUserOrg(ctx)
	rec, body, err := filestorage.Instance.Get(ctx.UserContext(), orgID, fileID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла заявки")
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("файл не найден"))
	}
	if rec.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, rec.ContentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.FileName+`"`)
	return ctx.Send(body)
}

// @Summary Удаление файла
// @Tags Заявка на изменение
// @Description Удаление файла заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   file_id     		path    string  				    	true         "file ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id}/file/{file_id} [delete]
func (c *mocReqApiController) deleteFile(ctx *fiber.Ctx) error {
	fileID, err := c.GetIDByKey(ctx, "file_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	orgID := middleware.GetUserOrg(ctx)
	if err = filestorage.Instance.Delete(ctx.UserContext(), orgID, fileID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления файла заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Журнал заявки
// @Tags Заявка на изменение
// @Description Журнал действий по заявке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]mocapimodels.HistoryEventView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/moc_request/{id}/history [get]
func (c *mocReqApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	orgID := middleware.GetUserOrg(ctx)
	list, err := mochistoryhandler.Instance.List(orgID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
