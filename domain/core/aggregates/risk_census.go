package aggregates

import (
	"mentcare/domain/core/entities"
	"mentcare/domain/core/valueobjects"
)

// RiskCensus is the aggregate view over a patient population: total count
// plus a breakdown per risk level. It is a pure value with no identity.
type RiskCensus struct {
	Count  int `json:"count"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// ComputeRiskCensus folds a patient list into a census. The result depends
// only on the multiset of risk levels, not on input order. An empty or nil
// list yields the zero census.
func ComputeRiskCensus(patients []*entities.Patient) RiskCensus {
	census := RiskCensus{}
	for _, p := range patients {
		if p == nil {
			continue
		}
		census.Count++
		switch p.Risk() {
		case valueobjects.RiskHigh:
			census.High++
		case valueobjects.RiskMedium:
			census.Medium++
		default:
			census.Low++
		}
	}
	return census
}

// IsEmpty reports whether the census covers no patients
func (c RiskCensus) IsEmpty() bool {
	return c.Count == 0
}
