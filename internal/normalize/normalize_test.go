package normalize

import (
	"bytes"
	"encoding/json"
	"testing"
	"unicode/utf8"

	"github.com/gyeh/providerstats/internal/model"
)

func TestToServiceLine_MissingChargeIsZero(t *testing.T) {
	rec := model.RawRecord{
		model.FieldNPI:           "1234567890",
		model.FieldHCPCSCode:     "27447",
		model.FieldTotalServices: "12",
	}
	line := ToServiceLine(rec, 2022)
	if line.AverageSubmittedCharge != 0 {
		t.Errorf("AverageSubmittedCharge: got %v, want 0", line.AverageSubmittedCharge)
	}
	if line.LineServiceCount != 12 {
		t.Errorf("LineServiceCount: got %d, want 12", line.LineServiceCount)
	}
	if line.Year != 2022 {
		t.Errorf("Year: got %d, want 2022", line.Year)
	}
}

func TestToServiceLine_NumericCoercion(t *testing.T) {
	rec := model.RawRecord{
		model.FieldNPI:                   json.Number("1234567890"),
		model.FieldHCPCSCode:             " 27447 ",
		model.FieldTotalServices:         "14.0",
		model.FieldTotalBeneficiaries:    json.Number("11"),
		model.FieldAvgSubmittedCharge:    "$4,512.25",
		model.FieldAvgAllowedAmount:      json.Number("1402.5"),
		model.FieldAvgPaymentAmount:      "n/a",
		model.FieldAvgStandardizedAmount: nil,
	}
	line := ToServiceLine(rec, 2021)

	if line.NPI != "1234567890" {
		t.Errorf("NPI: got %q", line.NPI)
	}
	if line.HCPCSCode != "27447" {
		t.Errorf("HCPCSCode: got %q", line.HCPCSCode)
	}
	if line.LineServiceCount != 14 {
		t.Errorf("LineServiceCount: got %d, want 14", line.LineServiceCount)
	}
	if line.BeneficiaryUniqueCount != 11 {
		t.Errorf("BeneficiaryUniqueCount: got %d, want 11", line.BeneficiaryUniqueCount)
	}
	if line.AverageSubmittedCharge != 4512.25 {
		t.Errorf("AverageSubmittedCharge: got %v, want 4512.25", line.AverageSubmittedCharge)
	}
	if line.AverageMedicareAllowed != 1402.5 {
		t.Errorf("AverageMedicareAllowed: got %v, want 1402.5", line.AverageMedicareAllowed)
	}
	if line.AverageMedicarePayment != 0 {
		t.Errorf("AverageMedicarePayment: got %v, want 0", line.AverageMedicarePayment)
	}
	if line.AverageMedicareStandard != 0 {
		t.Errorf("AverageMedicareStandard: got %v, want 0", line.AverageMedicareStandard)
	}
}

func TestToServiceLine_EmptyRecord(t *testing.T) {
	line := ToServiceLine(model.RawRecord{}, 2020)
	if line.NPI != "" || line.HCPCSCode != "" || line.PhysicianName != "" {
		t.Errorf("expected empty strings, got %+v", line)
	}
	if line.LineServiceCount != 0 || line.AverageMedicarePayment != 0 {
		t.Errorf("expected zero numerics, got %+v", line)
	}
}

func TestToServiceLine_DisplayName(t *testing.T) {
	cases := []struct {
		first, last, want string
	}{
		{"Jane", "Doe", "Jane Doe"},
		{"", "Doe", "Doe"},
		{"Jane", "", "Jane"},
		{"  Mary  Ann ", " Smith", "Mary Ann Smith"},
		{"", "", ""},
	}
	for _, tc := range cases {
		rec := model.RawRecord{model.FieldFirstName: tc.first, model.FieldLastName: tc.last}
		if got := ToServiceLine(rec, 2022).PhysicianName; got != tc.want {
			t.Errorf("name(%q, %q) = %q, want %q", tc.first, tc.last, got, tc.want)
		}
	}
}

func TestToProvider(t *testing.T) {
	rec := model.RawRecord{
		model.FieldNPI:              "1111111111",
		model.FieldFirstName:        "Jane",
		model.FieldLastName:         "Doe",
		model.FieldStreet1:          "1 Peachtree St",
		model.FieldCity:             "ATLANTA",
		model.FieldState:            "GA",
		model.FieldZip5:             "30309",
		model.FieldCountry:          "US",
		model.FieldProviderType:     "Orthopedic Surgery",
		model.FieldProviderTypeCode: "20",
		model.FieldParticipation:    "Y",
	}
	p := ToProvider(rec)
	want := model.Provider{
		NPI:                   "1111111111",
		FirstName:             "Jane",
		LastName:              "Doe",
		StreetAddress1:        "1 Peachtree St",
		City:                  "ATLANTA",
		State:                 "GA",
		ZipCode:               "30309",
		Country:               "US",
		SpecialtyDescription:  "Orthopedic Surgery",
		SpecialtyCode:         "20",
		MedicareParticipation: "Y",
	}
	if p != want {
		t.Errorf("ToProvider:\n got %+v\nwant %+v", p, want)
	}
}

func TestText_FloatNPI(t *testing.T) {
	rec := model.RawRecord{model.FieldNPI: float64(1234567890)}
	if got := Text(rec, model.FieldNPI); got != "1234567890" {
		t.Errorf("Text: got %q, want 1234567890", got)
	}
}

func TestInt_Truncates(t *testing.T) {
	cases := map[any]int64{
		"7":        7,
		"7.9":      7,
		"1,204":    1204,
		"":         0,
		"abc":      0,
		nil:        0,
		float64(3): 3,
		true:       0,
	}
	for in, want := range cases {
		rec := model.RawRecord{"v": in}
		if got := Int(rec, "v"); got != want {
			t.Errorf("Int(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestFloat_RejectsNaN(t *testing.T) {
	for _, in := range []string{"NaN", "Inf", "-Inf"} {
		rec := model.RawRecord{"v": in}
		if got := Float(rec, "v"); got != 0 {
			t.Errorf("Float(%q) = %v, want 0", in, got)
		}
	}
}

func TestNormalizeCode(t *testing.T) {
	cases := map[string]string{
		" 27447 ": "27447",
		"g0283":   "G0283",
		"99-213":  "99-213",
		"   ":     "",
		"--":      "--",
	}
	for in, want := range cases {
		if got := NormalizeCode(in); got != want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestObservationHash(t *testing.T) {
	a := ObservationHash(2022, "1111111111", "27447")
	b := ObservationHash(2022, "1111111111", "27447")
	c := ObservationHash(2021, "1111111111", "27447")
	if !bytes.Equal(a, b) {
		t.Error("same observation should hash equally")
	}
	if bytes.Equal(a, c) {
		t.Error("different years should hash differently")
	}
	if len(a) != 32 {
		t.Errorf("hash length: got %d, want 32", len(a))
	}
}

func TestText_StripsNULAndInvalidUTF8(t *testing.T) {
	rec := model.RawRecord{
		model.FieldLastName: "Smi\x00th",
		model.FieldCity:     "Atl\xe9nta",
	}
	if got := Text(rec, model.FieldLastName); got != "Smith" {
		t.Errorf("NUL not stripped: got %q", got)
	}
	got := Text(rec, model.FieldCity)
	if !utf8.ValidString(got) {
		t.Fatalf("invalid UTF-8 kept: %q", got)
	}
	if got != "Atl\uFFFDnta" {
		t.Errorf("city: got %q", got)
	}
}

func TestToServiceLine_KeepsCodePunctuation(t *testing.T) {
	l := ToServiceLine(model.RawRecord{
		model.FieldNPI:       "1111111111",
		model.FieldHCPCSCode: " 99-213 ",
	}, 2022)
	if l.HCPCSCode != "99-213" {
		t.Errorf("code: got %q, want 99-213", l.HCPCSCode)
	}
}
