package queries

// RiskReportQuery requests the aggregated risk census over all patients
type RiskReportQuery struct{}

// Validate validates the query
func (q RiskReportQuery) Validate() error {
	return nil
}
