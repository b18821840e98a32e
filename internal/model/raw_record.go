package model

// RawRecord is one flat field-name → value record as returned by the CMS
// datastore query API. Values are whatever the JSON decoder produced:
// string, json.Number, bool or nil.
type RawRecord map[string]any

// CMS "by Provider and Service" column names consumed by the collector.
const (
	FieldNPI                   = "Rndrng_NPI"
	FieldFirstName             = "Rndrng_Prvdr_First_Name"
	FieldLastName              = "Rndrng_Prvdr_Last_Name"
	FieldOrgName               = "Rndrng_Prvdr_Org_Name"
	FieldStreet1               = "Rndrng_Prvdr_St1"
	FieldCity                  = "Rndrng_Prvdr_City"
	FieldState                 = "Rndrng_Prvdr_State_Abrvtn"
	FieldZip5                  = "Rndrng_Prvdr_Zip5"
	FieldCountry               = "Rndrng_Prvdr_Cntry"
	FieldProviderType          = "Provider_Type"
	FieldProviderTypeCode      = "Provider_Type_Cd"
	FieldParticipation         = "Medicare_Participation_Indicator"
	FieldHCPCSCode             = "HCPCS_Cd"
	FieldHCPCSDesc             = "HCPCS_Desc"
	FieldTotalServices         = "Tot_Srvcs"
	FieldTotalBeneficiaries    = "Tot_Benes"
	FieldAvgSubmittedCharge    = "Avg_Sbmtd_Chrg"
	FieldAvgAllowedAmount      = "Avg_Mdcr_Alowd_Amt"
	FieldAvgPaymentAmount      = "Avg_Mdcr_Pymt_Amt"
	FieldAvgStandardizedAmount = "Avg_Mdcr_Stdzd_Amt"
)
