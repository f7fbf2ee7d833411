package models

import "fmt"

type PushSettingCode string

type PushTpl struct {
	Name  string
	Title string
	Msg   string
}

var PushCodeMap = map[PushSettingCode]PushTpl{
	PushMocSubmitted:        {Name: "Заявка направлена на согласование", Title: "Новая заявка на согласование", Msg: "Заявка %v «%v» ожидает вашего решения."},
	PushMocStatusChanged:    {Name: "Изменение статуса заявки", Title: "Изменён статус заявки", Msg: "Статус заявки %v «%v» изменён на %v."},
	PushMocApproved:         {Name: "Согласование заявки", Title: "Заявка согласована", Msg: "Заявка %v «%v» согласована всеми участниками."},
	PushMocRejected:         {Name: "Отклонение заявки", Title: "Заявка отклонена", Msg: "Заявка %v «%v» отклонена пользователем %v."},
	PushMocChangesRequested: {Name: "Заявка возвращена на доработку", Title: "Требуются изменения по заявке", Msg: "Пользователь %v запросил изменения по заявке %v «%v»."},
	PushMocImplemented:      {Name: "Внедрение изменения", Title: "Изменение внедрено", Msg: "Заявка %v «%v» переведена в статус «Внедрена»."},
	PushMocCommentAdded:     {Name: "Комментарий по заявке", Title: "Новый комментарий", Msg: "Пользователь %v оставил комментарий к заявке %v «%v»."},
	PushTaskAssigned:        {Name: "Назначение задачи", Title: "Вам назначена задача", Msg: "По заявке %v назначена задача «%v»."},
	PushTaskDue:             {Name: "Срок задачи истекает", Title: "Истекает срок задачи", Msg: "Срок выполнения задачи «%v» по заявке %v истекает %v."},
}

const (
	PushMocSubmitted        PushSettingCode = "PushMocSubmitted"
	PushMocStatusChanged    PushSettingCode = "PushMocStatusChanged"
	PushMocApproved         PushSettingCode = "PushMocApproved"
	PushMocRejected         PushSettingCode = "PushMocRejected"
	PushMocChangesRequested PushSettingCode = "PushMocChangesRequested"
	PushMocImplemented      PushSettingCode = "PushMocImplemented"
	PushMocCommentAdded     PushSettingCode = "PushMocCommentAdded"
	PushTaskAssigned        PushSettingCode = "PushTaskAssigned"
	PushTaskDue             PushSettingCode = "PushTaskDue"
)

type NotificationData struct {
	Code  PushSettingCode
	Msg   string
	Title string
}

func GetPushMocSubmitted(requestNumber, title string) NotificationData {
	code := PushMocSubmitted
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, requestNumber, title),
	}
}

func GetPushMocStatusChanged(requestNumber, title, statusHuman string) NotificationData {
	code := PushMocStatusChanged
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, requestNumber, title, statusHuman),
	}
}

func GetPushMocApproved(requestNumber, title string) NotificationData {
	code := PushMocApproved
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, requestNumber, title),
	}
}

func GetPushMocRejected(requestNumber, title, userName string) NotificationData {
	code := PushMocRejected
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, requestNumber, title, userName),
	}
}

func GetPushMocChangesRequested(userName, requestNumber, title string) NotificationData {
	code := PushMocChangesRequested
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, userName, requestNumber, title),
	}
}

func GetPushMocImplemented(requestNumber, title string) NotificationData {
	code := PushMocImplemented
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, requestNumber, title),
	}
}

func GetPushMocCommentAdded(userName, requestNumber, title string) NotificationData {
	code := PushMocCommentAdded
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, userName, requestNumber, title),
	}
}

func GetPushTaskAssigned(requestNumber, taskTitle string) NotificationData {
	code := PushTaskAssigned
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, requestNumber, taskTitle),
	}
}

func GetPushTaskDue(taskTitle, requestNumber, dueDate string) NotificationData {
	code := PushTaskDue
	return NotificationData{
		Code:  code,
		Title: PushCodeMap[code].Title,
		Msg:   fmt.Sprintf(PushCodeMap[code].Msg, taskTitle, requestNumber, dueDate),
	}
}
