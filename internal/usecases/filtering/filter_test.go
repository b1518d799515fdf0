package filtering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func testDataset() *domain.Dataset {
	return &domain.Dataset{
		Records: []domain.SalesRecord{
			{OrderDate: date(2023, 1, 5), Region: "East", Category: "Tech", SubCategory: "Phones", ProductName: "WidgetA", Sales: 100},
			{OrderDate: date(2023, 1, 20), Region: "West", Category: "Tech", SubCategory: "Phones", ProductName: "WidgetB", Sales: 50},
			{OrderDate: date(2023, 2, 1), Region: "East", Category: "Tech", SubCategory: "Copiers", ProductName: "WidgetA", Sales: 30},
			{OrderDate: date(2023, 3, 10), Region: "South", Category: "Furniture", SubCategory: "Chairs", ProductName: "ChairX", Sales: 200},
		},
		MinDate: date(2023, 1, 5),
		MaxDate: date(2023, 3, 10),
	}
}

func TestApply(t *testing.T) {
	ds := testDataset()

	tests := []struct {
		name      string
		selection *domain.FilterSelection
		expected  int
	}{
		{
			name:      "Seleção vazia aplica o padrão: intervalo completo e todos os valores",
			selection: &domain.FilterSelection{},
			expected:  4,
		},
		{
			name:      "Seleção nula equivale à seleção padrão",
			selection: nil,
			expected:  4,
		},
		{
			name: "Predicado de datas é inclusivo nas duas pontas",
			selection: &domain.FilterSelection{
				StartDate: datePtr(2023, 1, 5),
				EndDate:   datePtr(2023, 1, 20),
			},
			expected: 2,
		},
		{
			name: "Predicados de região e categoria compostos com AND",
			selection: &domain.FilterSelection{
				Regions:    []string{"East"},
				Categories: []string{"Tech"},
			},
			expected: 2,
		},
		{
			name: "Conjunto de regiões explicitamente vazio seleciona nada",
			selection: &domain.FilterSelection{
				Regions: []string{},
			},
			expected: 0,
		},
		{
			name: "Conjunto de categorias explicitamente vazio seleciona nada",
			selection: &domain.FilterSelection{
				Categories: []string{},
			},
			expected: 0,
		},
		{
			name: "Data inicial depois da final resulta em conjunto vazio, não erro",
			selection: &domain.FilterSelection{
				StartDate: datePtr(2023, 3, 1),
				EndDate:   datePtr(2023, 1, 1),
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Apply(ds, tt.selection)
			assert.Len(t, result, tt.expected)
		})
	}
}

func TestApply_RespeitaOsLimitesDaSelecao(t *testing.T) {
	ds := testDataset()

	selection := &domain.FilterSelection{
		StartDate:  datePtr(2023, 1, 1),
		EndDate:    datePtr(2023, 2, 28),
		Regions:    []string{"East", "West"},
		Categories: []string{"Tech"},
	}

	result := Apply(ds, selection)

	assert.NotEmpty(t, result)
	for _, record := range result {
		assert.False(t, record.OrderDate.Before(*selection.StartDate))
		assert.False(t, record.OrderDate.After(*selection.EndDate))
		assert.Contains(t, selection.Regions, record.Region)
		assert.Contains(t, selection.Categories, record.Category)
	}
}

func TestApply_Idempotente(t *testing.T) {
	ds := testDataset()

	selection := &domain.FilterSelection{
		StartDate: datePtr(2023, 1, 1),
		EndDate:   datePtr(2023, 2, 28),
		Regions:   []string{"East"},
	}

	once := Apply(ds, selection)

	// Refiltrar o resultado com a mesma seleção não muda nada
	refiltered := Apply(&domain.Dataset{
		Records: once,
		MinDate: ds.MinDate,
		MaxDate: ds.MaxDate,
	}, selection)

	assert.Equal(t, once, refiltered)
}

func TestApply_IgnoraHorarioDoDia(t *testing.T) {
	ds := &domain.Dataset{
		Records: []domain.SalesRecord{
			{OrderDate: time.Date(2023, 1, 5, 23, 30, 0, 0, time.UTC), Region: "East", Category: "Tech", ProductName: "WidgetA", Sales: 10},
		},
		MinDate: date(2023, 1, 5),
		MaxDate: date(2023, 1, 5),
	}

	result := Apply(ds, &domain.FilterSelection{
		StartDate: datePtr(2023, 1, 5),
		EndDate:   datePtr(2023, 1, 5),
	})

	assert.Len(t, result, 1)
}

func TestApply_DatasetVazio(t *testing.T) {
	result := Apply(&domain.Dataset{}, &domain.FilterSelection{})
	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestOptions(t *testing.T) {
	ds := testDataset()

	t.Run("Sem recorte de datas retorna todos os valores distintos ordenados", func(t *testing.T) {
		options := Options(ds, nil, nil)

		assert.Equal(t, []string{"East", "South", "West"}, options.Regions)
		assert.Equal(t, []string{"Furniture", "Tech"}, options.Categories)
		assert.Equal(t, ds.MinDate, options.MinDate)
		assert.Equal(t, ds.MaxDate, options.MaxDate)
	})

	t.Run("Opções são rederivadas depois do recorte por data", func(t *testing.T) {
		options := Options(ds, datePtr(2023, 1, 1), datePtr(2023, 2, 28))

		assert.Equal(t, []string{"East", "West"}, options.Regions)
		assert.Equal(t, []string{"Tech"}, options.Categories)
		// Os limites do seletor de datas continuam sendo os do dataset inteiro
		assert.Equal(t, ds.MinDate, options.MinDate)
		assert.Equal(t, ds.MaxDate, options.MaxDate)
	})

	t.Run("Dataset vazio produz opções vazias bem formadas", func(t *testing.T) {
		options := Options(&domain.Dataset{}, nil, nil)

		assert.Empty(t, options.Regions)
		assert.Empty(t, options.Categories)
	})
}
