// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizer

import (
	"strings"
	"testing"

	"idscan/internal/detector"
)

// resultAt returns the result covering exactly [start, end), or nil.
func resultAt(results []detector.Result, start, end int) *detector.Result {
	for i := range results {
		if results[i].Start == start && results[i].End == end {
			return &results[i]
		}
	}
	return nil
}

func TestAnalyzeGermanyVAT(t *testing.T) {
	rec := mustRecognizer(t, "GERMANY_VAT")

	// USt-IdNr form with a keyword nearby
	text := "Unsere Mehrwertsteuer Nummer: DE 123 456 789"
	results := analyze(t, rec, text, nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	// slashed nine-digit form without a keyword decays by half
	results = analyze(t, rec, "Rechnung 123/4567/8901 liegt vor", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 0.5) {
		t.Errorf("score = %v, want 0.5", results[0].Score)
	}

	// plain nine digits with a keyword
	results = analyze(t, rec, "MwSt Nummer: 987654321", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}
}

func TestAnalyzeSpainSSN(t *testing.T) {
	rec := mustRecognizer(t, "SPAIN_SSN")

	text := "número de la seguridad social: 281234567840"
	results := analyze(t, rec, text, nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	start := strings.Index(text, "281234567840")
	if results[0].Start != start || results[0].End != start+12 {
		t.Errorf("span = [%d, %d), want [%d, %d)", results[0].Start, results[0].End, start, start+12)
	}
	// checksum pass 0.7 plus keyword boost 0.3
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	// spaced form, no keywords: checksum pass score only
	results = analyze(t, rec, "afiliación 28 12345678 40", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 0.7) {
		t.Errorf("score = %v, want 0.7", results[0].Score)
	}

	// wrong control digits: dropped
	if got := analyze(t, rec, "número de la seguridad social: 281234567841", nil); len(got) != 0 {
		t.Errorf("failing checksum should produce no results, got %+v", got)
	}
}

func TestAnalyzeCanadaSIN(t *testing.T) {
	rec := mustRecognizer(t, "CANADA_SIN")

	results := analyze(t, rec, "SIN: 989798889", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if results[0].Start != 5 || results[0].End != 14 {
		t.Errorf("span = [%d, %d), want [5, 14)", results[0].Start, results[0].End)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	results = analyze(t, rec, "My Social Insurance Number is 046-454-286.", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if results[0].Start != 30 || results[0].End != 41 {
		t.Errorf("span = [%d, %d), want [30, 41)", results[0].Start, results[0].End)
	}

	// fails the Luhn check: dropped even with keywords nearby
	if got := analyze(t, rec, "SIN: 123456788", nil); len(got) != 0 {
		t.Errorf("failing Luhn should produce no results, got %+v", got)
	}
	// eight digits never match
	if got := analyze(t, rec, "an invalid SIN: 12345678.", nil); len(got) != 0 {
		t.Errorf("expected no results for 8 digits, got %+v", got)
	}
}

func TestAnalyzeFranceNationalID(t *testing.T) {
	rec := mustRecognizer(t, "FRANCE_NATIONAL_ID")

	text := "Le numéro de sécurité sociale est 2120120330076."
	results := analyze(t, rec, text, nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	start := strings.Index(text, "2120120330076")
	if results[0].Start != start || results[0].End != start+13 {
		t.Errorf("span = [%d, %d), want [%d, %d)", results[0].Start, results[0].End, start, start+13)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	// nine digits and fifteen digits never match
	for _, text := range []string{"numéro 123456789", "numéro 123456789012345"} {
		if got := analyze(t, rec, text, nil); len(got) != 0 {
			t.Errorf("expected no results for %q, got %+v", text, got)
		}
	}
}

func TestAnalyzeFranceDriversLicense(t *testing.T) {
	rec := mustRecognizer(t, "FRANCE_DRIVERS_LICENSE")

	// dated form: year, month, department, serial
	results := analyze(t, rec, "Permis de conduire: 230585123456", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	// twelve characters with a single letter
	results = analyze(t, rec, "numéro de permis 12345678901A", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 0.65) {
		t.Errorf("score = %v, want 0.65", results[0].Score)
	}

	// all digits without a plausible month: dropped
	if got := analyze(t, rec, "numéro de permis 123456789012", nil); len(got) != 0 {
		t.Errorf("expected no results, got %+v", got)
	}
	// too short
	if got := analyze(t, rec, "numéro de permis 123456789A", nil); len(got) != 0 {
		t.Errorf("expected no results, got %+v", got)
	}
}

func TestAnalyzeEUVAT(t *testing.T) {
	rec := mustRecognizer(t, "EU_VAT")

	text := "VAT number: GB-123456789"
	results := analyze(t, rec, text, nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if results[0].Start != 12 || results[0].End != 24 {
		t.Errorf("span = [%d, %d), want [12, 24)", results[0].Start, results[0].End)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	// no keywords nearby: base score only
	results = analyze(t, rec, "ref GB-123456789", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 0.5) {
		t.Errorf("score = %v, want 0.5", results[0].Score)
	}
}

func TestAnalyzeGermanyBICSwift(t *testing.T) {
	rec := mustRecognizer(t, "GERMANY_BIC_SWIFT")

	results := analyze(t, rec, "SWIFT code: DEUTDEFF", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	// eleven-character code without keywords
	results = analyze(t, rec, "ref DEUTDEFF500", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 0.7) {
		t.Errorf("score = %v, want 0.7", results[0].Score)
	}
}

func TestAnalyzeAustraliaBankAccount(t *testing.T) {
	rec := mustRecognizer(t, "AUSTRALIA_BANK_ACCOUNT")

	// a known BSB prefix promotes the match to full confidence
	results := analyze(t, rec, "bsb 012-785-1234567", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	// unknown BSB prefix
	results = analyze(t, rec, "bsb 111-111-1234567", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 0.95) {
		t.Errorf("score = %v, want 0.95", results[0].Score)
	}

	// without banking context the match decays below the keep threshold
	if got := analyze(t, rec, "ref 012-785-1234567", nil); len(got) != 0 {
		t.Errorf("expected no results without context, got %+v", got)
	}
}

func TestAnalyzeSpainPassport(t *testing.T) {
	rec := mustRecognizer(t, "SPAIN_PASSPORT")

	text := "pasaporte AB1234567, fecha de expedición 01-01-2030"
	results := analyze(t, rec, text, nil)
	start := strings.Index(text, "AB1234567")
	r := resultAt(results, start, start+9)
	if r == nil {
		t.Fatalf("no result covering the passport number: %+v", results)
	}
	if !almostEqual(r.Score, 1.0) {
		t.Errorf("score = %v, want 1.0", r.Score)
	}

	// keyword without a date
	text = "pasaporte AB1234567"
	results = analyze(t, rec, text, nil)
	r = resultAt(results, 10, 19)
	if r == nil {
		t.Fatalf("no result covering the passport number: %+v", results)
	}
	if !almostEqual(r.Score, 0.8) {
		t.Errorf("score = %v, want 0.8", r.Score)
	}

	// no passport keywords: dropped
	if got := analyze(t, rec, "expediente AB1234567", nil); len(got) != 0 {
		t.Errorf("expected no results without keywords, got %+v", got)
	}
}

func TestAnalyzeNetherlandsVAT(t *testing.T) {
	rec := mustRecognizer(t, "NETHERLANDS_VAT")

	results := analyze(t, rec, "BTW-nummer: 123456789B01", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 0.9) {
		t.Errorf("score = %v, want 0.9", results[0].Score)
	}

	// no keywords nearby
	results = analyze(t, rec, "ref 123456789B01", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 0.5) {
		t.Errorf("score = %v, want 0.5", results[0].Score)
	}

	// failing elevenproef: dropped
	if got := analyze(t, rec, "BTW-nummer: 123456788B01", nil); len(got) != 0 {
		t.Errorf("failing checksum should produce no results, got %+v", got)
	}
}

func TestAnalyzeNetherlandsDriversLicense(t *testing.T) {
	rec := mustRecognizer(t, "NETHERLANDS_DRIVERS_LICENSE")

	results := analyze(t, rec, "rijbewijs nummer 1234567890", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	results = analyze(t, rec, "code 1234567890", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 0.7) {
		t.Errorf("score = %v, want 0.7", results[0].Score)
	}
}

func TestAnalyzeCanadaDriversLicense(t *testing.T) {
	rec := mustRecognizer(t, "CANADA_DRIVERS_LICENSE")

	// number, province abbreviation, and the license label
	results := analyze(t, rec, "12345678 ON license number", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	// Quebec format with license context
	results = analyze(t, rec, "driver's license A123456789012", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	// a province name next to eight digits is too weak on its own
	if got := analyze(t, rec, "Ontario 12345678", nil); len(got) != 0 {
		t.Errorf("expected no results without license context, got %+v", got)
	}
}

func TestAnalyzeSwedenIBAN(t *testing.T) {
	rec := mustRecognizer(t, "SWEDEN_IBAN")

	results := analyze(t, rec, "IBAN nummer: SE4550000000058398257466", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	// valid check digits but no keywords
	results = analyze(t, rec, "ref SE4550000000058398257466", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 0.5) {
		t.Errorf("score = %v, want 0.5", results[0].Score)
	}

	// failing MOD 97-10: dropped
	if got := analyze(t, rec, "IBAN SE4550000000058398257467", nil); len(got) != 0 {
		t.Errorf("failing checksum should produce no results, got %+v", got)
	}
}

func TestAnalyzeCreditCardIssuer(t *testing.T) {
	rec := mustRecognizer(t, "CREDIT_CARD_ISSUER")

	results := analyze(t, rec, "credit card 4111111111111111", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	// issuer pattern without keywords
	results = analyze(t, rec, "5500005555555559", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 0.85) {
		t.Errorf("score = %v, want 0.85", results[0].Score)
	}

	// fails the Luhn check: dropped
	if got := analyze(t, rec, "credit card 4111111111111112", nil); len(got) != 0 {
		t.Errorf("failing Luhn should produce no results, got %+v", got)
	}
}

func TestAnalyzeMedicalNumbers(t *testing.T) {
	npi := mustRecognizer(t, "MEDICAL_NUMBER")

	results := analyze(t, npi, "provider NPI1234567893 on file", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}
	if got := analyze(t, npi, "provider NPI12345 on file", nil); len(got) != 0 {
		t.Errorf("expected no results for a short NPI, got %+v", got)
	}

	mrn := mustRecognizer(t, "MEDICAL_RECORD_NUMBER")

	results = analyze(t, mrn, "MRN 123456", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	// a bare six-digit number keeps its low base score
	results = analyze(t, mrn, "file 654321 attached", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 0.5) {
		t.Errorf("score = %v, want 0.5", results[0].Score)
	}
}

func TestAnalyzePCIDSS(t *testing.T) {
	rec := mustRecognizer(t, "PCI_DSS")

	results := analyze(t, rec, "card number 4111-1111-1111-1111", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	// structured track data dump
	results = analyze(t, rec, `"Credit_Card_Number" s 16 "4111111111111111"`, nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 0.9) {
		t.Errorf("score = %v, want 0.9", results[0].Score)
	}

	// fails the Luhn check: dropped
	if got := analyze(t, rec, "card number 1234-5678-9012-3456", nil); len(got) != 0 {
		t.Errorf("failing Luhn should produce no results, got %+v", got)
	}
}

func TestAnalyzeStatePolicies(t *testing.T) {
	tests := []struct {
		name   string
		entity string
		text   string
		want   float64
	}{
		{"new hampshire ssn", "US_NHHB1660", "New Hampshire resident Bob, SSN 260-53-2093", 0.9},
		{"nevada license", "US_NVSB347", "Nevada Driver's License: A12345678", 0.95},
		{"washington license", "US_WASB6043", "Washington driver's license WDL123456789AA", 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := mustRecognizer(t, tt.entity)
			results := analyze(t, rec, tt.text, nil)
			if len(results) != 1 {
				t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
			}
			if !almostEqual(results[0].Score, tt.want) {
				t.Errorf("score = %v, want %v", results[0].Score, tt.want)
			}
		})
	}

	// a bare identifier without the state named nearby stays below the
	// keep threshold
	rec := mustRecognizer(t, "US_NHHB1660")
	if got := analyze(t, rec, "SSN 260-53-2093", nil); len(got) != 0 {
		t.Errorf("expected no results without state context, got %+v", got)
	}
}

func TestAnalyzeFERPA(t *testing.T) {
	rec := mustRecognizer(t, "FERPA")

	results := analyze(t, rec, "FERPA student id number 123456", nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if !almostEqual(results[0].Score, 1.0) {
		t.Errorf("score = %v, want 1.0", results[0].Score)
	}

	// discouraging vocabulary voids the match
	if got := analyze(t, rec, "FERPA student id number on invoice 42", nil); len(got) != 0 {
		t.Errorf("expected no results with negative keywords, got %+v", got)
	}
}

func TestDefaultRegistryCoverage(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	families := map[string][]string{
		"en": {
			"CANADA_SIN", "EU_VAT", "GERMANY_BIC_SWIFT",
			"AUSTRALIA_BANK_ACCOUNT", "MEDICAL_NUMBER",
			"MEDICAL_RECORD_NUMBER", "CANADA_DRIVERS_LICENSE",
			"PCI_DSS", "US_NHHB1660", "US_NVSB347", "US_WASB6043", "FERPA",
		},
		"es": {"SPAIN_DNI", "SPAIN_SSN", "SPAIN_PASSPORT"},
		"fr": {"FRANCE_VAT", "FRANCE_NATIONAL_ID", "FRANCE_DRIVERS_LICENSE"},
		"nl": {"NETHERLANDS_NATIONAL_ID", "NETHERLANDS_VAT", "NETHERLANDS_DRIVERS_LICENSE"},
		"sv": {"SWEDEN_NATIONAL_ID", "SWEDEN_IBAN"},
		"de": {"GERMANY_VAT"},
	}
	for language, entities := range families {
		supported := make(map[string]bool)
		for _, e := range reg.SupportedEntities(language) {
			supported[e] = true
		}
		for _, e := range entities {
			if !supported[e] {
				t.Errorf("SupportedEntities(%s) missing %s", language, e)
			}
		}
	}
}
