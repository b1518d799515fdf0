// Package exporter grava as tabelas agregadas de um relatório do dashboard
// em arquivos CSV ou XLSX, para download pelo usuário e para os snapshots
// agendados. O arredondamento de duas casas acontece apenas aqui, na borda de
// exibição: os agregados em memória nunca são arredondados.
package exporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Formatos de exportação suportados
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ReportExporter define a escrita de relatórios do dashboard em arquivos
type ReportExporter interface {
	// Write serializa o relatório no formato informado para o writer (download HTTP)
	Write(report *domain.DashboardReport, format string, w io.Writer) error

	// SaveSnapshot grava o relatório como um arquivo de snapshot no diretório
	// configurado e retorna o caminho gerado
	SaveSnapshot(report *domain.DashboardReport) (string, error)
}

type Exporter struct {
	cfg config.Export
}

func New(cfg config.Export) ReportExporter {
	return &Exporter{cfg: cfg}
}

// ContentType retorna o media type do formato de exportação
func ContentType(format string) string {
	if format == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *Exporter) Write(report *domain.DashboardReport, format string, w io.Writer) error {
	switch format {
	case FormatCSV:
		return writeCSV(report, w)
	case FormatXLSX:
		return writeXLSX(report, w)
	default:
		return errors.Errorf("formato de exportação inválido: %q", format)
	}
}

func (e *Exporter) SaveSnapshot(report *domain.DashboardReport) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar o identificador do snapshot")
	}

	format := e.cfg.DefaultFormat
	if format != FormatCSV && format != FormatXLSX {
		format = FormatXLSX
	}

	if err := os.MkdirAll(e.cfg.OutputDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "erro ao criar o diretório de snapshots %q", e.cfg.OutputDir)
	}

	name := fmt.Sprintf("dashboard_%s_%s.%s", time.Now().Format("2006-01-02"), id, format)
	path := filepath.Join(e.cfg.OutputDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao criar o arquivo de snapshot %q", path)
	}
	defer file.Close()

	if err := e.Write(report, format, file); err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"records": report.RecordCount,
	}).Info("Snapshot do dashboard gravado")

	return path, nil
}

// section é uma tabela agregada já serializada para exportação
type section struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// reportSections serializa as seis tabelas do relatório na ordem dos gráficos
func reportSections(report *domain.DashboardReport) []section {
	monthlyTotals := section{
		Name:    "Vendas por mês",
		Headers: []string{"Mês", "Vendas"},
	}
	for _, row := range report.MonthlyTotals {
		monthlyTotals.Rows = append(monthlyTotals.Rows, []string{row.Month, formatAmount(row.Sales)})
	}

	monthlyByRegion := section{
		Name:    "Vendas por mês e região",
		Headers: []string{"Mês", "Região", "Vendas"},
	}
	for _, row := range report.MonthlyByRegion {
		monthlyByRegion.Rows = append(monthlyByRegion.Rows, []string{row.Month, row.Region, formatAmount(row.Sales)})
	}

	monthlyBySubCategory := section{
		Name:    "Vendas por mês e subcategoria",
		Headers: []string{"Mês", "Subcategoria", "Vendas"},
	}
	for _, row := range report.MonthlyBySubCategory {
		monthlyBySubCategory.Rows = append(monthlyBySubCategory.Rows, []string{row.Month, row.SubCategory, formatAmount(row.Sales)})
	}

	subCategoryTotals := section{
		Name:    "Vendas por subcategoria",
		Headers: []string{"Subcategoria", "Vendas"},
	}
	for _, row := range report.SubCategoryTotals {
		subCategoryTotals.Rows = append(subCategoryTotals.Rows, []string{row.SubCategory, formatAmount(row.Sales)})
	}

	matrix := section{
		Name:    "Região por mês",
		Headers: append([]string{"Região"}, report.RegionMonthMatrix.Months...),
	}
	for i, region := range report.RegionMonthMatrix.Regions {
		row := make([]string, 0, len(report.RegionMonthMatrix.Months)+1)
		row = append(row, region)
		for _, cell := range report.RegionMonthMatrix.Cells[i] {
			row = append(row, formatAmount(cell))
		}
		matrix.Rows = append(matrix.Rows, row)
	}

	topProducts := section{
		Name:    "Top produtos",
		Headers: []string{"Posição", "Produto", "Vendas"},
	}
	for _, item := range report.TopProducts {
		topProducts.Rows = append(topProducts.Rows, []string{
			strconv.Itoa(item.Position),
			item.ProductName,
			formatAmount(item.Sales),
		})
	}

	return []section{
		monthlyTotals,
		monthlyByRegion,
		monthlyBySubCategory,
		subCategoryTotals,
		matrix,
		topProducts,
	}
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(utils.RoundWithTwoDecimalPlace(value), 'f', 2, 64)
}
