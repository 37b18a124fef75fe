package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestExcelGenerate(t *testing.T) {
	generator := NewExcelGenerator()

	header := []string{"Immatriculation", "Marque", "Statut"}
	rows := [][]string{
		{"AB-123-CD", "Renault", "Disponible"},
		{"EF-456-GH", "Iveco", "En transit"},
	}

	data, err := generator.Generate("Véhicules", header, rows)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open generated workbook: %v", err)
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	if sheet != "Export" {
		t.Fatalf("unexpected sheet name %q", sheet)
	}

	title, err := file.GetCellValue(sheet, "A1")
	if err != nil || title != "Véhicules" {
		t.Fatalf("title cell: %q (%v)", title, err)
	}
	got, _ := file.GetCellValue(sheet, "C3")
	if got != "Statut" {
		t.Fatalf("header cell C3: %q", got)
	}
	got, _ = file.GetCellValue(sheet, "B5")
	if got != "Iveco" {
		t.Fatalf("data cell B5: %q", got)
	}
}

func TestExcelGenerateEmptyRows(t *testing.T) {
	data, err := NewExcelGenerator().Generate("Tarifs", []string{"Nom"}, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := excelize.OpenReader(bytes.NewReader(data)); err != nil {
		t.Fatalf("open generated workbook: %v", err)
	}
}

func TestFileName(t *testing.T) {
	at := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)

	if got := FileName("vehicles", "xlsx", at); got != "vehicles-20260829.xlsx" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := FileName("bank-accounts", "pdf", at); got != "bank-accounts-20260829.pdf" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := FileName("", "xlsx", at); got != "export-20260829.xlsx" {
		t.Fatalf("unexpected fallback %q", got)
	}
	if got := FileName("coûts/été", "xlsx", at); got != "co-ts--t-20260829.xlsx" {
		t.Fatalf("unexpected sanitized name %q", got)
	}
}
