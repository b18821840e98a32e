package model

// Provider is a rendering provider identified by its NPI. One row per NPI is
// kept in the store; later collections overwrite every non-key attribute.
type Provider struct {
	NPI                   string
	FirstName             string
	LastName              string
	OrganizationName      string
	StreetAddress1        string
	City                  string
	State                 string
	ZipCode               string
	Country               string
	SpecialtyDescription  string
	SpecialtyCode         string
	MedicareParticipation string
}

// Values returns the provider values in the column order of the upsert
// statement: npi first, medicare_participation last.
func (p *Provider) Values() []any {
	return []any{
		p.NPI,
		p.FirstName,
		p.LastName,
		p.OrganizationName,
		p.StreetAddress1,
		p.City,
		p.State,
		p.ZipCode,
		p.Country,
		p.SpecialtyDescription,
		p.SpecialtyCode,
		p.MedicareParticipation,
	}
}
