package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGenerateCatalogProducesPDF(t *testing.T) {
	svc := DocsService{Loader: func() ([]CatalogItem, error) {
		return []CatalogItem{
			{Name: "Widget", BrandName: "BrandX", TypeName: "TypeY", Price: 19.9, Sold: 3, Available: true},
			{Name: "Gadget", BrandName: "BrandX", TypeName: "TypeY", Price: 5, Sold: 0, Available: false},
		}, nil
	}}

	data, filename, err := svc.GenerateCatalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}

	want := "CATALOG_" + time.Now().Format("20060102") + ".pdf"
	if filename != want {
		t.Fatalf("wrong filename: got %s want %s", filename, want)
	}
}

func TestGenerateCatalogEmptySetStillRenders(t *testing.T) {
	svc := DocsService{Loader: func() ([]CatalogItem, error) {
		return nil, nil
	}}

	data, _, err := svc.GenerateCatalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty catalog must still render a document")
	}
}

func TestGenerateCatalogLoaderFailure(t *testing.T) {
	svc := DocsService{Loader: func() ([]CatalogItem, error) {
		return nil, errors.New("db gone")
	}}

	if _, _, err := svc.GenerateCatalog(); err == nil || !strings.Contains(err.Error(), "db gone") {
		t.Fatalf("loader error must propagate, got %v", err)
	}
}
