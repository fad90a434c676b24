package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mfields/supplyplan/pkg/domain/entities"
)

// Loader handles loading supplier master data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadSuppliers loads supplier records from a CSV file.
//
// Expected columns:
//
//	name, region, lead_time_weeks, capacity_kg_per_week,
//	cost_per_kg, quality_rating, is_qualified
func (l *Loader) LoadSuppliers(filename string) ([]*entities.Supplier, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open suppliers file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read suppliers CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("suppliers CSV must have header and at least one data row")
	}

	expectedHeader := []string{"name", "region", "lead_time_weeks", "capacity_kg_per_week", "cost_per_kg", "quality_rating", "is_qualified"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("suppliers CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var suppliers []*entities.Supplier
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("suppliers CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		supplier, err := parseSupplier(record)
		if err != nil {
			return nil, fmt.Errorf("suppliers CSV row %d: %w", i+2, err)
		}

		suppliers = append(suppliers, supplier)
	}

	return suppliers, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}

func parseSupplier(record []string) (*entities.Supplier, error) {
	name := entities.SupplierID(strings.TrimSpace(record[0]))
	region := strings.TrimSpace(record[1])

	leadTime, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid lead_time_weeks: %s", record[2])
	}

	capacity, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid capacity_kg_per_week: %s", record[3])
	}

	costPerKg, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil {
		return nil, fmt.Errorf("invalid cost_per_kg: %s", record[4])
	}

	qualityRating, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quality_rating: %s", record[5])
	}

	isQualified := parseBool(record[6])

	return entities.NewSupplier(name, region, leadTime, capacity, costPerKg, qualityRating, isQualified)
}

// parseBool accepts the boolean-like tokens found in supplier master data
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
