package exporter

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// utf8BOM ajuda o Excel a reconhecer o arquivo como UTF-8
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// writeCSV grava o relatório como um único CSV: uma seção por tabela agregada,
// titulada pelo nome da seção e separada da seguinte por uma linha em branco
func writeCSV(report *domain.DashboardReport, w io.Writer) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return errors.Wrap(err, "erro ao gravar o BOM do CSV")
	}

	writer := csv.NewWriter(w)

	for i, sec := range reportSections(report) {
		if i > 0 {
			if err := writer.Write([]string{}); err != nil {
				return errors.Wrap(err, "erro ao gravar o separador de seções do CSV")
			}
		}

		if err := writer.Write([]string{sec.Name}); err != nil {
			return errors.Wrapf(err, "erro ao gravar o título da seção %q", sec.Name)
		}

		if err := writer.Write(sec.Headers); err != nil {
			return errors.Wrapf(err, "erro ao gravar o cabeçalho da seção %q", sec.Name)
		}

		for _, row := range sec.Rows {
			if err := writer.Write(row); err != nil {
				return errors.Wrapf(err, "erro ao gravar uma linha da seção %q", sec.Name)
			}
		}
	}

	writer.Flush()

	return errors.Wrap(writer.Error(), "erro ao finalizar a escrita do CSV")
}
