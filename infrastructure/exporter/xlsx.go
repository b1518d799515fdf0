package exporter

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// writeXLSX grava o relatório como uma pasta de trabalho XLSX, uma planilha
// por tabela agregada, na ordem dos gráficos do dashboard
func writeXLSX(report *domain.DashboardReport, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sec := range reportSections(report) {
		if i == 0 {
			// A primeira seção reaproveita a planilha padrão da pasta
			if err := f.SetSheetName("Sheet1", sec.Name); err != nil {
				return errors.Wrapf(err, "erro ao renomear a planilha %q", sec.Name)
			}
		} else {
			if _, err := f.NewSheet(sec.Name); err != nil {
				return errors.Wrapf(err, "erro ao criar a planilha %q", sec.Name)
			}
		}

		if err := writeSheet(f, sec); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "erro ao gravar a pasta de trabalho XLSX")
	}

	return nil
}

func writeSheet(f *excelize.File, sec section) error {
	for col, header := range sec.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errors.Wrapf(err, "erro ao montar a célula de cabeçalho da planilha %q", sec.Name)
		}
		if err := f.SetCellValue(sec.Name, cell, header); err != nil {
			return errors.Wrapf(err, "erro ao gravar o cabeçalho da planilha %q", sec.Name)
		}
	}

	for i, row := range sec.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return errors.Wrapf(err, "erro ao montar a célula da planilha %q", sec.Name)
			}

			// Valores numéricos entram como número para a planilha somar e
			// formatar; o resto entra como texto
			if number, convErr := strconv.ParseFloat(value, 64); convErr == nil {
				err = f.SetCellValue(sec.Name, cell, number)
			} else {
				err = f.SetCellValue(sec.Name, cell, value)
			}

			if err != nil {
				return errors.Wrapf(err, "erro ao gravar uma linha da planilha %q", sec.Name)
			}
		}
	}

	return nil
}
