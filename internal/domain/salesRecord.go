// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// SalesRecord representa uma linha de venda do dataset (uma linha por item de pedido)
type SalesRecord struct {
	OrderDate   time.Time `json:"order_date"`
	Region      string    `json:"region"`
	Category    string    `json:"category"`
	SubCategory string    `json:"sub_category"`
	ProductName string    `json:"product_name"`
	Sales       float64   `json:"sales"`
}

// Dataset é o conjunto completo de vendas carregado do arquivo CSV.
// Depois de carregado ele é imutável: nenhum componente escreve nos registros.
type Dataset struct {
	Records  []SalesRecord
	MinDate  time.Time
	MaxDate  time.Time
	Source   string
	LoadedAt time.Time
}

// Len retorna a quantidade de registros do dataset
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}
