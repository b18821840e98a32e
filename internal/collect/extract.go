package collect

import (
	"github.com/gyeh/providerstats/internal/model"
	"github.com/gyeh/providerstats/internal/normalize"
)

// batch is one year's accepted records, reduced to unique providers and
// persistable service lines.
type batch struct {
	accepted  int
	order     []string
	providers map[string]model.Provider
	lines     []model.ServiceLine
}

// extract classifies records and maps the accepted ones. A provider seen
// more than once keeps its first position and its last value. Providers
// without an NPI, and lines without an NPI or code, are dropped.
func extract(records []model.RawRecord, year int, c Classifier) *batch {
	b := &batch{providers: make(map[string]model.Provider)}

	for _, rec := range records {
		if !c.Accept(rec) {
			continue
		}
		b.accepted++

		p := normalize.ToProvider(rec)
		if p.NPI != "" {
			if _, seen := b.providers[p.NPI]; !seen {
				b.order = append(b.order, p.NPI)
			}
			b.providers[p.NPI] = p
		}

		l := normalize.ToServiceLine(rec, year)
		if l.NPI != "" && l.HCPCSCode != "" {
			b.lines = append(b.lines, l)
		}
	}
	return b
}

// Providers returns the deduplicated providers in first-seen order.
func (b *batch) Providers() []model.Provider {
	out := make([]model.Provider, 0, len(b.order))
	for _, npi := range b.order {
		out = append(out, b.providers[npi])
	}
	return out
}
