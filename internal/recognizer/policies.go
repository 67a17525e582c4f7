// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizer

import (
	"idscan/internal/checksum"
	"idscan/internal/contextscore"
)

// Policy families bundle several identifier patterns behind one entity
// type so a single hit flags text as in scope for a compliance regime
// (PCI DSS, state breach-notification statutes, FERPA). The state families
// require the state to be named nearby so a bare identifier does not
// trigger them.

func pciDSSConfig() Config {
	return Config{
		EntityType: "PCI_DSS",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "card number", Regex: `\b(?:\d{4}[- ]?){3}\d{4}\b`, BaseScore: 0.85, Checksum: checksum.Luhn},
			{Name: "track data", Regex: `"Credit_Card_Number"\s*s\s*\d+\s*"\d{16}"`, BaseScore: 0.9},
		},
		StripChars: "- ",
		ContextKeywords: []string{
			"pci", "cardholder data", "card number", "credit card",
			"track data", "payment card",
		},
		ContextWindow: 100,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.15,
	}
}

func newHampshirePolicyConfig() Config {
	return Config{
		EntityType: "US_NHHB1660",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "card number", Regex: `\b(?:4[0-9]{12}(?:[0-9]{3})?|5[1-5][0-9]{14}|3[47][0-9]{13}|6(?:011|5[0-9]{2})[0-9]{12})\b`, BaseScore: 0.85, Checksum: checksum.Luhn},
			{Name: "ssn", Regex: `\b\d{3}-\d{2}-\d{4}\b`, BaseScore: 0.9, Checksum: validSSNStructure},
			{Name: "drivers license", Regex: `\b[A-Z0-9]{9}\b`, BaseScore: 0.8},
		},
		StripChars:      "- ",
		ContextKeywords: []string{"new hampshire"},
		SecondaryKeywords: []string{
			"credit card", "social security", "ssn", "driver's license",
			"drivers license",
		},
		ContextWindow: 300,
		ContextPolicy: contextscore.PolicyOverride,
		OverrideScores: contextscore.OverrideScores{
			Both:      0.9,
			Keyword:   0.7,
			Secondary: 0.4,
			None:      0.2,
		},
		MinKeepScore: 0.5,
	}
}

func nevadaPolicyConfig() Config {
	return Config{
		EntityType: "US_NVSB347",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "card number", Regex: `\b(?:4[0-9]{12}(?:[0-9]{3})?|5[1-5][0-9]{14}|3[47][0-9]{13}|6(?:011|5[0-9]{2})[0-9]{12})\b`, BaseScore: 0.85, Checksum: checksum.Luhn},
			{Name: "ssn", Regex: `\b\d{3}-\d{2}-\d{4}\b`, BaseScore: 0.9, Checksum: validSSNStructure},
			{Name: "drivers license", Regex: `(?i)\bnevada\sdriver'?s?\slicense[:\s]{0,2}[A-Z0-9]{9}\b`, BaseScore: 0.85},
			{Name: "track data", Regex: `Name\s*:\s*"[\w\s]+"\s*CCN\s*:\s*"\d+"\s*Expiry\s*:\s*"\d{2}/\d{2}"\s*CVV\s*:\s*"\d{3}"`, BaseScore: 0.95},
		},
		StripChars:      "- ",
		ContextKeywords: []string{"nevada"},
		SecondaryKeywords: []string{
			"credit card", "ccn", "payment card", "social security", "ssn",
			"driver's license", "cc track data",
		},
		ContextWindow: 300,
		ContextPolicy: contextscore.PolicyOverride,
		OverrideScores: contextscore.OverrideScores{
			Both:      0.95,
			Keyword:   0.8,
			Secondary: 0.4,
			None:      0.2,
		},
		MinKeepScore: 0.5,
	}
}

func washingtonPolicyConfig() Config {
	return Config{
		EntityType: "US_WASB6043",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "card number", Regex: `\b(?:4[0-9]{12}(?:[0-9]{3})?|5[1-5][0-9]{14}|3[47][0-9]{13}|6(?:011|5[0-9]{2})[0-9]{12}|(?:2131|1800|35[0-9]{3})[0-9]{11})\b`, BaseScore: 0.85, Checksum: checksum.Luhn},
			{Name: "ssn", Regex: `\b\d{3}-\d{2}-\d{4}\b`, BaseScore: 0.9, Checksum: validSSNStructure},
			{Name: "drivers license", Regex: `\bWDL[A-Z0-9]{9}[A-Z]{2}\b`, BaseScore: 0.8},
			{Name: "track data", Regex: `"Credit_Card_Number"\s*s\s*\d+\s*"\d{13,16}"`, BaseScore: 0.95},
		},
		StripChars:      "- ",
		ContextKeywords: []string{"washington"},
		SecondaryKeywords: []string{
			"credit card", "card number", "social security", "ssn",
			"driver's license", "track data", "cvv", "expiry date",
		},
		ContextWindow: 300,
		ContextPolicy: contextscore.PolicyOverride,
		OverrideScores: contextscore.OverrideScores{
			Both:      0.9,
			Keyword:   0.7,
			Secondary: 0.4,
			None:      0.2,
		},
		MinKeepScore: 0.5,
	}
}

func ferpaConfig() Config {
	return Config{
		EntityType: "FERPA",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "student id", Regex: `(?i)\bferpa\b.*\b(?:student|id|identification)\s?(?:number|num|no|nbr)\b`, BaseScore: 0.85},
			{Name: "student id named", Regex: `(?i)\b(?:student|identification)\s?(?:number|num|no|nbr)\b.*\b(?:first name|last name|student name|record)\b`, BaseScore: 0.85},
			{Name: "student dob", Regex: `(?i)(?:student name|student id|identification).*(?:date of birth|birthdate).*(?:19\d{2}|20\d{2}|\d{1,2}[-/]\d{1,2}[-/]\d{4})`, BaseScore: 0.85},
			{Name: "gpa transcript", Regex: `(?i)(?:grade point average|gpa).{0,2}=.*(?:transcript|academic record)\b`, BaseScore: 0.85},
			{Name: "disciplinary", Regex: `(?i)(?:discipline|disciplinary).*(?:student|identification)\s?(?:number|num|no|nbr)\b`, BaseScore: 0.85},
		},
		ContextKeywords: []string{
			"ferpa", "student", "student id", "identification number",
			"birthdate", "grade point average", "transcript",
			"academic record", "disciplinary record",
		},
		NegativeKeywords: []string{
			"member", "parcel", "invoice", "vat", "vin", "vehicle",
			"insurance", "transaction", "seller", "benefit", "caller",
			"taxpayer", "employer", "employee", "loan", "docket",
		},
		// NegativeFactor stays zero: a negative keyword hit voids the match.
		ContextWindow: 300,
		ContextPolicy: contextscore.PolicyMultiplicative,
		ContextBoost:  0.15,
	}
}
