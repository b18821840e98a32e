package model

// ServiceLineRow mirrors the Parquet schema of a service-line snapshot.
// Provider location columns are denormalized from the providers table and
// are empty when the provider row was never stored.
type ServiceLineRow struct {
	NPI              string  `parquet:"npi"`
	PhysicianName    string  `parquet:"physician_name"`
	Year             int32   `parquet:"year"`
	HCPCSCode        string  `parquet:"hcpcs_code"`
	HCPCSDescription string  `parquet:"hcpcs_description"`
	City             *string `parquet:"city,optional"`
	State            *string `parquet:"state,optional"`
	ZipCode          *string `parquet:"zip_code,optional"`

	LineServiceCount       int64 `parquet:"line_service_count"`
	BeneficiaryUniqueCount int64 `parquet:"beneficiary_unique_count"`

	// Averages in dollars as published by CMS
	AverageSubmittedCharge  float64 `parquet:"average_submitted_charge"`
	AverageMedicareAllowed  float64 `parquet:"average_medicare_allowed"`
	AverageMedicarePayment  float64 `parquet:"average_medicare_payment"`
	AverageMedicareStandard float64 `parquet:"average_medicare_standard_payment"`

	RunID string `parquet:"run_id"`
}
