package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mfields/supplyplan/pkg/domain/entities"
)

func sampleResult() *entities.ScenarioResult {
	return &entities.ScenarioResult{
		RunID:              "run-1",
		ScenarioName:       "Disruption: Titan-RU (12wk) [proportional]",
		Policy:             entities.PolicyProportional,
		DisruptedSupplier:  "Titan-RU",
		DisruptionWeeks:    12,
		OrderQuantityKg:    5000,
		TotalDeliveryWeeks: 6,
		TotalCostUSD:       decimal.RequireFromString("154230.60"),
		SuppliersUsed:      []entities.SupplierID{"Titan-US", "Titan-JP", "Titan-AU"},
		Allocation: entities.Allocation{
			"Titan-US": 1538.5,
			"Titan-JP": 2307.7,
			"Titan-AU": 1153.8,
		},
		Feasible: true,
		Notes:    []string{"Titan-RU (Russia) is OFFLINE for 12 weeks."},
	}
}

func TestFormatResultSummary_FieldOrder(t *testing.T) {
	summary := FormatResultSummary(sampleResult())

	expected := strings.Join([]string{
		"Scenario: Disruption: Titan-RU (12wk) [proportional]",
		"Order: 5000 kg titanium",
		"Feasible: Yes",
		"Total Delivery Time: 6.0 weeks",
		"Total Cost: $154230.60",
		"Suppliers Used: Titan-US, Titan-JP, Titan-AU",
		"Allocation:",
		"  - Titan-US: 1538 kg",
		"  - Titan-JP: 2308 kg",
		"  - Titan-AU: 1154 kg",
		"Notes:",
		"  - Titan-RU (Russia) is OFFLINE for 12 weeks.",
	}, "\n")

	if summary != expected {
		t.Errorf("Summary mismatch.\nExpected:\n%s\n\nGot:\n%s", expected, summary)
	}
}

func TestFormatResultSummary_Infeasible(t *testing.T) {
	r := &entities.ScenarioResult{
		ScenarioName:  "Disruption: Q1 (12wk)",
		TotalCostUSD:  decimal.Zero,
		SuppliersUsed: []entities.SupplierID{},
		Allocation:    entities.Allocation{},
		Notes:         []string{"NO SUPPLIERS AVAILABLE. Order cannot be fulfilled."},
	}

	summary := FormatResultSummary(r)

	if !strings.Contains(summary, "Feasible: NO") {
		t.Errorf("Expected NO label, got:\n%s", summary)
	}
	if !strings.Contains(summary, "Total Cost: $0.00") {
		t.Errorf("Expected zero cost, got:\n%s", summary)
	}
}

func TestWriteComparisonTable(t *testing.T) {
	var buf bytes.Buffer
	WriteComparisonTable(&buf, []*entities.ScenarioResult{sampleResult()})

	out := buf.String()
	if !strings.Contains(out, "Strategy") || !strings.Contains(out, "proportional") {
		t.Errorf("Unexpected table output:\n%s", out)
	}
	if !strings.Contains(out, "$154230.60") {
		t.Errorf("Expected cost column, got:\n%s", out)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []*entities.ScenarioResult{sampleResult()}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(decoded))
	}
	if decoded[0]["policy"] != "proportional" {
		t.Errorf("Unexpected policy field: %v", decoded[0]["policy"])
	}
	if decoded[0]["feasible"] != true {
		t.Errorf("Expected feasible true, got %v", decoded[0]["feasible"])
	}
}
