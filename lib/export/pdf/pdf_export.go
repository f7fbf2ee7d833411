package pdfexport

import (
	"bytes"
	"fmt"

	"moc-tools-backend/lib/risk"
	dbmodels "moc-tools-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateRequestCard формирует печатную карточку заявки на изменение
func GenerateRequestCard(rec dbmodels.MocRequest) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateRequestCard panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, fmt.Sprintf("Заявка на изменение %v", rec.RequestNumber), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(4)

	writeField := func(name, value string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(55, 8, name, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 8, value, "", "L", false)
	}

	writeField("Название:", rec.Title)
	writeField("Статус:", rec.Status.ToHuman())
	writeField("Тип изменения:", string(rec.ChangeType))
	writeField("Приоритет:", string(rec.Priority))
	if rec.Facility != nil {
		writeField("Объект:", rec.Facility.Name)
	}
	if rec.Author != nil {
		writeField("Автор:", rec.Author.GetFullName())
	}
	score := risk.Score(rec.RiskProbability, rec.RiskSeverity)
	writeField("Оценка риска:", fmt.Sprintf("%v (%v x %v), категория: %v",
		score, rec.RiskProbability, rec.RiskSeverity, risk.GetTier(score).ToHuman()))
	if rec.SubmittedAt != nil {
		writeField("Подана:", rec.SubmittedAt.Format("02.01.2006"))
	}
	if rec.CompletedAt != nil {
		writeField("Завершена:", rec.CompletedAt.Format("02.01.2006"))
	}

	pdf.Ln(4)
	writeField("Описание:", rec.Description)
	writeField("Обоснование:", rec.Justification)
	if len(rec.AffectedAreas) > 0 {
		areas := ""
		for idx, area := range rec.AffectedAreas {
			if idx > 0 {
				areas += ", "
			}
			areas += area
		}
		writeField("Затронутые участки:", areas)
	}

	if len(rec.Approvers) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, "Согласование", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		for _, approver := range rec.Approvers {
			name := approver.UserID
			if approver.User != nil {
				name = approver.User.GetFullName()
			}
			line := fmt.Sprintf("%v (%v): %v", name, approver.RequiredRole, approver.State.ToHuman())
			if approver.Comment != "" {
				line += fmt.Sprintf(", комментарий: %v", approver.Comment)
			}
			pdf.MultiCell(0, 8, line, "", "L", false)
		}
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
