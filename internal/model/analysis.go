package model

// ProviderRollup is one provider with its service-line aggregates.
type ProviderRollup struct {
	NPI                  string
	PhysicianName        string
	SpecialtyDescription string
	City                 string
	ZipCode              string
	TotalProcedures      int64
	UniqueProcedureTypes int64
	AvgSubmittedCharge   float64
	AvgMedicareAllowed   float64
	AvgMedicarePayment   float64
}

// ProcedureObservation is a single provider's figures for one procedure code.
type ProcedureObservation struct {
	PhysicianName          string
	HCPCSCode              string
	HCPCSDescription       string
	Year                   int
	LineServiceCount       int64
	AverageSubmittedCharge float64
	AverageMedicareAllowed float64
	AverageMedicarePayment float64
	City                   string
	ZipCode                string
}

// ProcedureStats compares one procedure code across all providers.
type ProcedureStats struct {
	HCPCSCode          string
	HCPCSDescription   string
	Frequency          int64
	ProviderCount      int64
	AvgSubmittedCharge float64
	AvgMedicareAllowed float64
	AvgMedicarePayment float64
	MinPayment         float64
	MaxPayment         float64
}

// ProcedureComparison is either the observations for one code (Code set)
// or the cross-procedure rollup (Code empty).
type ProcedureComparison struct {
	Code         string
	Observations []ProcedureObservation
	Procedures   []ProcedureStats
}

// TrendPoint is one year of a procedure's price trend.
type TrendPoint struct {
	Year           int
	ProcedureCount int64
	AvgSubmitted   float64
	AvgAllowed     float64
	AvgPayment     float64
}

// DuplicateGroup reports service lines sharing a row hash, which happens
// when the same year was collected more than once.
type DuplicateGroup struct {
	NPI       string
	HCPCSCode string
	Year      int
	Rows      int64
}
