package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/furnimart/furnimart-backend/config"
	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/db"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Bulk product import. Expected columns:
// Name | Description | Price | Original Price | Category | Materials | Weight | Stock
// Categories are created on the fly when missing.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	rows, err := readProductRows(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d\n", len(rows))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	imported := 0
	skipped := 0
	categoryCache := make(map[string]uint)

	for i, row := range rows {
		categoryID, err := resolveCategory(categoryRepo, categoryCache, row.Category)
		if err != nil {
			log.Printf("Row %d: failed to resolve category %q: %v", i+2, row.Category, err)
			skipped++
			continue
		}

		product := &model.Product{
			Name:          row.Name,
			Description:   row.Description,
			Price:         row.Price,
			OriginalPrice: row.OriginalPrice,
			CategoryID:    categoryID,
			Materials:     row.Materials,
			Weight:        row.Weight,
			StockQuantity: row.Stock,
			InStock:       row.Stock > 0,
			IsActive:      true,
		}
		product.DeriveSlug()

		if err := productRepo.Create(product); err != nil {
			log.Printf("Row %d: failed to create product %q: %v", i+2, row.Name, err)
			skipped++
			continue
		}
		imported++
	}

	fmt.Println("Import completed!")
	fmt.Printf("Imported: %d, skipped: %d\n", imported, skipped)
}

type productRow struct {
	Name          string
	Description   string
	Price         float64
	OriginalPrice float64
	Category      string
	Materials     []string
	Weight        float64
	Stock         int
}

func readProductRows(filePath string) ([]productRow, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var products []productRow
	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}
		if len(row) < 5 {
			continue
		}

		name := strings.TrimSpace(row[0])
		description := strings.TrimSpace(row[1])
		category := strings.TrimSpace(row[4])
		if name == "" || category == "" {
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil || price <= 0 {
			continue
		}

		p := productRow{
			Name:        name,
			Description: description,
			Price:       price,
			Category:    category,
		}

		if len(row) > 3 {
			if v, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64); err == nil {
				p.OriginalPrice = v
			}
		}
		if len(row) > 5 && strings.TrimSpace(row[5]) != "" {
			for _, m := range strings.Split(row[5], ",") {
				if m = strings.TrimSpace(m); m != "" {
					p.Materials = append(p.Materials, m)
				}
			}
		}
		if len(row) > 6 {
			if v, err := strconv.ParseFloat(strings.TrimSpace(row[6]), 64); err == nil {
				p.Weight = v
			}
		}
		if len(row) > 7 {
			if v, err := strconv.Atoi(strings.TrimSpace(row[7])); err == nil {
				p.Stock = v
			}
		}

		products = append(products, p)
	}

	return products, nil
}

func resolveCategory(repo repository.CategoryRepository, cache map[string]uint, name string) (uint, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}

	category, err := repo.FindByName(name)
	if err == nil {
		cache[name] = category.ID
		return category.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	fresh := &model.Category{Name: name, IsActive: true}
	fresh.DeriveSlug()
	if err := repo.Create(fresh); err != nil {
		return 0, err
	}
	cache[name] = fresh.ID
	return fresh.ID, nil
}
