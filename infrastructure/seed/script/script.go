// Script de seed: gera um dataset de vendas de exemplo no formato Superstore
// para a API subir em desenvolvimento sem o arquivo real.
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	outputPath = "Cleaned_Superstore_Sales_Dataset.csv"
	totalRows  = 500
	idLength   = 6
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var regions = []string{"Central", "East", "South", "West"}

var subCategoriesByCategory = map[string][]string{
	"Furniture":       {"Bookcases", "Chairs", "Furnishings", "Tables"},
	"Office Supplies": {"Binders", "Envelopes", "Labels", "Paper", "Storage"},
	"Technology":      {"Accessories", "Copiers", "Machines", "Phones"},
}

var categories = []string{"Furniture", "Office Supplies", "Technology"}

func setupLogger() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de seed do dataset...")
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func main() {
	setupLogger()
	startTime := time.Now()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	file, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("ERRO ao criar o arquivo %s: %v", outputPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Order Date", "Region", "Category", "Sub-Category", "Product Name", "Sales"}
	if err := writer.Write(header); err != nil {
		log.Fatalf("ERRO ao gravar o cabeçalho: %v", err)
	}

	// Um ano de vendas a partir de janeiro do ano passado
	firstDay := time.Date(time.Now().Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)

	successCount := 0
	for i := 0; i < totalRows; i++ {
		orderDate := firstDay.AddDate(0, 0, rng.Intn(365))
		region := regions[rng.Intn(len(regions))]
		category := categories[rng.Intn(len(categories))]
		subCategories := subCategoriesByCategory[category]
		subCategory := subCategories[rng.Intn(len(subCategories))]
		productName := fmt.Sprintf("%s %s", subCategory, generateID())
		sales := 5 + rng.Float64()*995

		row := []string{
			orderDate.Format("2006-01-02"),
			region,
			category,
			subCategory,
			productName,
			strconv.FormatFloat(sales, 'f', 2, 64),
		}

		if err := writer.Write(row); err != nil {
			log.Printf("ERRO ao gravar a linha [%d/%d]: %v", i+1, totalRows, err)
			continue
		}
		successCount++

		if i > 0 && i%100 == 0 {
			log.Printf("Progresso: %d/%d linhas geradas", i+1, totalRows)
		}
	}

	elapsed := time.Since(startTime)
	log.Printf("Seed concluído em %v. Linhas gravadas: %d, arquivo: %s", elapsed, successCount, outputPath)
}
