package normalize

import (
	"github.com/gyeh/providerstats/internal/model"
)

// ToProvider maps a raw CMS record to a Provider. It never fails: absent
// fields become empty strings. Whether the result is stored is decided by
// the caller (an empty NPI is never persisted).
func ToProvider(rec model.RawRecord) model.Provider {
	return model.Provider{
		NPI:                   Text(rec, model.FieldNPI),
		FirstName:             Text(rec, model.FieldFirstName),
		LastName:              Text(rec, model.FieldLastName),
		OrganizationName:      Text(rec, model.FieldOrgName),
		StreetAddress1:        Text(rec, model.FieldStreet1),
		City:                  Text(rec, model.FieldCity),
		State:                 Text(rec, model.FieldState),
		ZipCode:               Text(rec, model.FieldZip5),
		Country:               Text(rec, model.FieldCountry),
		SpecialtyDescription:  Text(rec, model.FieldProviderType),
		SpecialtyCode:         Text(rec, model.FieldProviderTypeCode),
		MedicareParticipation: Text(rec, model.FieldParticipation),
	}
}

// ToServiceLine maps a raw CMS record to a ServiceLine for the given year.
// Numeric fields that are missing or unparseable are zero.
func ToServiceLine(rec model.RawRecord, year int) model.ServiceLine {
	npi := Text(rec, model.FieldNPI)
	code := NormalizeCode(Text(rec, model.FieldHCPCSCode))

	return model.ServiceLine{
		NPI:                     npi,
		PhysicianName:           DisplayName(Text(rec, model.FieldFirstName), Text(rec, model.FieldLastName)),
		Year:                    year,
		HCPCSCode:               code,
		HCPCSDescription:        Text(rec, model.FieldHCPCSDesc),
		LineServiceCount:        Int(rec, model.FieldTotalServices),
		BeneficiaryUniqueCount:  Int(rec, model.FieldTotalBeneficiaries),
		AverageSubmittedCharge:  Float(rec, model.FieldAvgSubmittedCharge),
		AverageMedicareAllowed:  Float(rec, model.FieldAvgAllowedAmount),
		AverageMedicarePayment:  Float(rec, model.FieldAvgPaymentAmount),
		AverageMedicareStandard: Float(rec, model.FieldAvgStandardizedAmount),
		RowHash:                 ObservationHash(year, npi, code),
	}
}
