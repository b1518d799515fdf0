// Package dataset implementa o carregamento e o cache do dataset de vendas,
// a única fonte de dados da aplicação.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Colunas obrigatórias do CSV. Colunas extras são ignoradas.
const (
	columnOrderDate   = "Order Date"
	columnRegion      = "Region"
	columnCategory    = "Category"
	columnSubCategory = "Sub-Category"
	columnProductName = "Product Name"
	columnSales       = "Sales"
)

var requiredColumns = []string{
	columnOrderDate,
	columnRegion,
	columnCategory,
	columnSubCategory,
	columnProductName,
	columnSales,
}

// Formatos de data aceitos, testados em ordem. O dataset Superstore original
// usa mês/dia/ano, por isso o formato americano vem antes dos demais.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02-01-2006",
}

// Load lê o arquivo CSV inteiro para a memória, valida o schema e converte
// cada linha em um SalesRecord. Qualquer linha com data ou valor de venda
// inválido aborta o carregamento: a validação acontece aqui, nunca dentro de
// uma agregação.
func Load(path string) (*domain.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o arquivo do dataset %q", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o cabeçalho do dataset %q", path)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, 1024)
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler a linha %d do dataset", line+1)
		}
		line++

		record, err := parseRecord(row, columns)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao interpretar a linha %d do dataset", line)
		}

		records = append(records, record)
	}

	ds := &domain.Dataset{
		Records:  records,
		Source:   path,
		LoadedAt: time.Now(),
	}

	for i, record := range records {
		if i == 0 || record.OrderDate.Before(ds.MinDate) {
			ds.MinDate = record.OrderDate
		}
		if i == 0 || record.OrderDate.After(ds.MaxDate) {
			ds.MaxDate = record.OrderDate
		}
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": len(records),
	}).Info("Dataset de vendas carregado com sucesso")

	return ds, nil
}

// mapColumns valida o schema e resolve o índice de cada coluna obrigatória
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	missing := make([]string, 0)
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, errors.Errorf(
			"schema do dataset inválido: colunas obrigatórias ausentes: %s",
			strings.Join(missing, ", "),
		)
	}

	return columns, nil
}

func parseRecord(row []string, columns map[string]int) (domain.SalesRecord, error) {
	var record domain.SalesRecord

	rawDate := strings.TrimSpace(row[columns[columnOrderDate]])
	orderDate, err := parseOrderDate(rawDate)
	if err != nil {
		return record, err
	}

	rawSales := strings.TrimSpace(row[columns[columnSales]])
	sales, err := strconv.ParseFloat(rawSales, 64)
	if err != nil {
		return record, errors.Wrapf(err, "valor de venda inválido %q", rawSales)
	}

	record = domain.SalesRecord{
		OrderDate:   orderDate,
		Region:      strings.TrimSpace(row[columns[columnRegion]]),
		Category:    strings.TrimSpace(row[columns[columnCategory]]),
		SubCategory: strings.TrimSpace(row[columns[columnSubCategory]]),
		ProductName: strings.TrimSpace(row[columns[columnProductName]]),
		Sales:       sales,
	}

	return record, nil
}

// parseOrderDate tenta os formatos aceitos em ordem; o primeiro que casar vence
func parseOrderDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}

	return time.Time{}, errors.Errorf("data de pedido inválida %q", value)
}
