package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Policy names an allocation strategy
type Policy string

const (
	PolicyProportional  Policy = "proportional"
	PolicyCheapestFirst Policy = "cheapest_first"
	PolicyFastestFirst  Policy = "fastest_first"
	PolicyMinCost       Policy = "min_cost"
	PolicyMinTime       Policy = "min_time"
	PolicyBalanced      Policy = "balanced"
)

// HeuristicPolicies returns the greedy policies in comparator order
func HeuristicPolicies() []Policy {
	return []Policy{PolicyProportional, PolicyCheapestFirst, PolicyFastestFirst}
}

// LPPolicies returns the solver-backed policies in comparator order
func LPPolicies() []Policy {
	return []Policy{PolicyMinCost, PolicyMinTime, PolicyBalanced}
}

// ParsePolicy validates a policy name from external input
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyProportional, PolicyCheapestFirst, PolicyFastestFirst,
		PolicyMinCost, PolicyMinTime, PolicyBalanced:
		return p, nil
	default:
		return "", fmt.Errorf(
			"unknown policy %q (valid: proportional, cheapest_first, fastest_first, min_cost, min_time, balanced)", s)
	}
}

// IsLP reports whether the policy requires an LP solver backend
func (p Policy) IsLP() bool {
	switch p {
	case PolicyMinCost, PolicyMinTime, PolicyBalanced:
		return true
	default:
		return false
	}
}

// Disruption describes a supplier outage. An empty SupplierID means no
// disruption (baseline scenario).
type Disruption struct {
	SupplierID SupplierID
	Weeks      int
}

// NewDisruption validates a disruption event. Duration must be 1..52 weeks
// when a supplier is named.
func NewDisruption(id SupplierID, weeks int) (Disruption, error) {
	if id != "" && (weeks < 1 || weeks > 52) {
		return Disruption{}, fmt.Errorf("disruption duration must be between 1 and 52 weeks, got %d", weeks)
	}
	return Disruption{SupplierID: id, Weeks: weeks}, nil
}

// IsBaseline reports whether no supplier is disrupted
func (d Disruption) IsBaseline() bool {
	return d.SupplierID == ""
}

// ScenarioResult is the output of a single scenario evaluation. It is created
// once per policy evaluation and never mutated afterwards; the caller that
// requested the scenario owns it.
type ScenarioResult struct {
	RunID                 string
	ScenarioName          string
	Policy                Policy
	DisruptedSupplier     SupplierID
	DisruptionWeeks       int
	OrderQuantityKg       float64
	TotalDeliveryWeeks    float64
	TotalCostUSD          decimal.Decimal
	WeightedLeadTimeWeeks float64
	SuppliersUsed         []SupplierID
	Allocation            Allocation
	Feasible              bool
	SolverBackend         string // set only for LP policies
	Notes                 []string
}
