package xlsexport

import (
	"bytes"

	"moc-tools-backend/lib/risk"
	dbmodels "moc-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportMocRegister(list []dbmodels.MocRequest) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var mocHeaders = []string{"Номер", "Название", "Объект", "Тип изменения", "Приоритет", "Статус", "Балл риска", "Категория риска", "Автор", "Подана", "Завершена"}

func (i impl) ExportMocRegister(list []dbmodels.MocRequest) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, mocHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeMocData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Реестр изменений")
	return f.WriteToBuffer()
}

func writeMocData(f *excelize.File, sheet string, list []dbmodels.MocRequest, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(mocHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Номер"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.RequestNumber); err != nil {
			return row, err
		}

		// "Название"
		col++
		if err := writeColumn(f, sheet, col, row, item.Title); err != nil {
			return row, err
		}

		// "Объект"
		col++
		if item.Facility != nil {
			if err := writeColumn(f, sheet, col, row, item.Facility.Name); err != nil {
				return row, err
			}
		}

		// "Тип изменения"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.ChangeType)); err != nil {
			return row, err
		}

		// "Приоритет"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Priority)); err != nil {
			return row, err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Балл риска"
		col++
		score := risk.Score(item.RiskProbability, item.RiskSeverity)
		if err := writeColumn(f, sheet, col, row, score); err != nil {
			return row, err
		}

		// "Категория риска"
		col++
		if err := writeColumn(f, sheet, col, row, risk.GetTier(score).ToHuman()); err != nil {
			return row, err
		}

		// "Автор"
		col++
		if item.Author != nil {
			if err := writeColumn(f, sheet, col, row, item.Author.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Подана"
		col++
		if item.SubmittedAt != nil {
			if err := writeColumn(f, sheet, col, row, item.SubmittedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Завершена"
		col++
		if item.CompletedAt != nil {
			if err := writeColumn(f, sheet, col, row, item.CompletedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
