package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// CatalogItem is one printable row of the catalog export.
type CatalogItem struct {
	Name      string
	BrandName string
	TypeName  string
	Price     float64
	Sold      int
	Available bool
}

// DocsService renders the published catalog as a PDF. Loader is injectable
// so tests run without a database.
type DocsService struct {
	Loader func() ([]CatalogItem, error)
}

func (s DocsService) GenerateCatalog() ([]byte, string, error) {
	items, err := s.Loader()
	if err != nil {
		return nil, "", err
	}
	return buildCatalogPDF(items)
}

func buildCatalogPDF(items []CatalogItem) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Product Catalog", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PRODUCT CATALOG")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(70, 7, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Brand", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 7, "Sold", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "In stock", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range items {
		stock := "yes"
		if !it.Available {
			stock = "no"
		}
		pdf.CellFormat(70, 7, it.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, it.BrandName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", it.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", it.Sold), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, stock, "1", 1, "C", false, 0, "")
	}

	if len(items) == 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 7, "No published products.")
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("CATALOG_%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
