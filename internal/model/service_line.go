package model

import "github.com/google/uuid"

// ServiceLine is one (provider, HCPCS code, year) billing aggregate.
// Service lines are append-only; re-collecting a year appends new rows.
type ServiceLine struct {
	NPI                     string
	PhysicianName           string
	Year                    int
	HCPCSCode               string
	HCPCSDescription        string
	LineServiceCount        int64
	BeneficiaryUniqueCount  int64
	AverageSubmittedCharge  float64
	AverageMedicareAllowed  float64
	AverageMedicarePayment  float64
	AverageMedicareStandard float64

	// RowHash is SHA-256 over (npi, code, year). It is not unique: repeated
	// collections of the same year produce rows with equal hashes.
	RowHash []byte
}

// ServiceLineColumns returns the ordered column names for COPY into service_lines.
func ServiceLineColumns() []string {
	return []string{
		"run_id",
		"npi",
		"physician_name",
		"year",
		"hcpcs_code",
		"hcpcs_description",
		"line_service_count",
		"beneficiary_unique_count",
		"average_submitted_charge",
		"average_medicare_allowed",
		"average_medicare_payment",
		"average_medicare_standard_payment",
		"row_hash",
	}
}

// CopyValues returns the row values in the same order as ServiceLineColumns(),
// suitable for pgx CopyFromSource.
func (l *ServiceLine) CopyValues(runID uuid.UUID) []any {
	return []any{
		runID,
		l.NPI,
		l.PhysicianName,
		l.Year,
		l.HCPCSCode,
		l.HCPCSDescription,
		l.LineServiceCount,
		l.BeneficiaryUniqueCount,
		l.AverageSubmittedCharge,
		l.AverageMedicareAllowed,
		l.AverageMedicarePayment,
		l.AverageMedicareStandard,
		l.RowHash,
	}
}
