// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizer

import (
	"strings"

	"idscan/internal/checksum"
	"idscan/internal/contextscore"
)

// BuiltinConfigs returns the declarative configuration of every built-in
// identifier family. The slice is rebuilt on each call so callers can
// modify their copy freely before registration.
func BuiltinConfigs() []Config {
	return []Config{
		creditCardConfig(),
		creditCardIssuerConfig(),
		creditCardTrackDataConfig(),
		ibanConfig(),
		swedenIBANConfig(),
		euVATConfig(),
		franceVATConfig(),
		germanyVATConfig(),
		netherlandsVATConfig(),
		germanyBICSwiftConfig(),
		australiaBankAccountConfig(),
		netherlandsNationalIDConfig(),
		franceNationalIDConfig(),
		nzHealthNumberConfig(),
		spainDNIConfig(),
		spainSSNConfig(),
		spainPassportConfig(),
		italyFiscalCodeConfig(),
		swedenNationalIDConfig(),
		usSSNITINConfig(),
		canadaSINConfig(),
		medicalNumberConfig(),
		medicalRecordNumberConfig(),
		germanDriversLicenseConfig(),
		usDriversLicenseConfig(),
		canadaDriversLicenseConfig(),
		franceDriversLicenseConfig(),
		netherlandsDriversLicenseConfig(),
		pciDSSConfig(),
		newHampshirePolicyConfig(),
		nevadaPolicyConfig(),
		washingtonPolicyConfig(),
		ferpaConfig(),
	}
}

func creditCardConfig() Config {
	return Config{
		EntityType: "CREDIT_CARD",
		Patterns: []PatternConfig{
			{Name: "visa dashed", Regex: `\b4\d{3}-\d{4}-\d{4}-\d{4}\b`, BaseScore: 1.0},
			{Name: "visa spaced", Regex: `\b4\d{3} \d{4} \d{4} \d{4}\b`, BaseScore: 0.8},
			{Name: "visa plain", Regex: `\b4\d{15}\b`, BaseScore: 1.0},
			{Name: "mastercard dashed", Regex: `\b5[1-5]\d{2}-\d{4}-\d{4}-\d{4}\b`, BaseScore: 1.0},
			{Name: "mastercard plain", Regex: `\b5[1-5]\d{14}\b`, BaseScore: 1.0},
			{Name: "mastercard 2-series plain", Regex: `\b2[2-7]\d{14}\b`, BaseScore: 1.0},
			{Name: "amex spaced", Regex: `\b3[47]\d{2} \d{6} \d{5}\b`, BaseScore: 1.0},
			{Name: "amex dashed", Regex: `\b3[47]\d{2}-\d{6}-\d{5}\b`, BaseScore: 1.0},
			{Name: "amex plain", Regex: `\b3[47]\d{13}\b`, BaseScore: 1.0},
			{Name: "discover plain", Regex: `\b6011\d{12}\b`, BaseScore: 1.0},
			{Name: "diners plain", Regex: `\b30[0-5]\d{11}\b`, BaseScore: 1.0},
			{Name: "diners alternate plain", Regex: `\b3[689]\d{12}\b`, BaseScore: 1.0},
			{Name: "jcb plain", Regex: `\b35[2-8]\d{13}\b`, BaseScore: 1.0},
			{Name: "unionpay plain", Regex: `\b622\d{13,16}\b`, BaseScore: 1.0},
		},
		Checksum:   checksum.Luhn,
		StripChars: " -",
		ContextKeywords: []string{
			"credit", "card", "visa", "mastercard", "amex", "american express",
			"discover", "jcb", "diners", "unionpay", "cardholder", "payment",
			"expiration", "expiry", "cvv", "cvc", "billing",
		},
		NegativeKeywords: []string{
			"tracking", "order", "invoice", "serial", "reference",
			"timestamp", "phone", "md5", "sha", "hash", "uuid", "checksum",
		},
		ContextWindow:  50,
		ContextPolicy:  contextscore.PolicyMultiplicative,
		ContextBoost:   0.15,
		NegativeFactor: 0.15,
	}
}

func creditCardTrackDataConfig() Config {
	return Config{
		EntityType: "CREDIT_CARD_TRACK_DATA",
		Patterns: []PatternConfig{
			{Name: "card number", Regex: `\b(?:\d{4}[- ]?){3}\d{4}\b`, BaseScore: 0.85, Checksum: checksum.Luhn},
			{Name: "expiry date", Regex: `\b(?:0[1-9]|1[0-2])/(?:\d{4}|\d{2})\b`, BaseScore: 0.8},
		},
		StripChars: " -/",
		ContextKeywords: []string{
			"credit card", "card number", "expiry date", "cvv",
			"track-1", "track-2", "name",
		},
		ContextWindow: 100,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.1,

		// Track data only fires when several correlated signals appear
		// together: card number, expiry, and a person name span from the
		// external NLP collaborator.
		MinHitQuorum:      3,
		AuxiliaryEntities: []string{"PERSON"},
	}
}

func ibanConfig() Config {
	return Config{
		EntityType: "EU_IBAN",
		Patterns: []PatternConfig{
			{Name: "iban general", Regex: `\b[A-Z]{2}\d{2}(?: ?[A-Z0-9]{4}){2,7}(?: ?[A-Z0-9]{1,3})?\b`, BaseScore: 0.5},
		},
		Checksum:          checksum.IBAN,
		ChecksumPassScore: 1.0,
		StripChars:        " ",
		ContextKeywords: []string{
			"iban", "international bank account number", "numéro de compte",
			"nummer iban", "code iban", "identifiant bancaire",
		},
		ContextWindow: 50,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.1,
	}
}

func franceVATConfig() Config {
	return Config{
		EntityType: "FRANCE_VAT",
		Language:   "fr",
		Patterns: []PatternConfig{
			{Name: "france vat", Regex: `\bFR[- ]?[A-Za-z0-9]{2}[- ,.]?\d{3}[- ,.]?\d{3}[- ,.]?\d{3}\b`, BaseScore: 0.5},
			{Name: "france vat compact", Regex: `\bFR\d{11}\b`, BaseScore: 0.5},
		},
		Checksum:          checksum.FranceVAT,
		ChecksumPassScore: 0.7,
		StripChars:        "- ,.",
		ContextKeywords: []string{
			"vat number", "vat no", "vat#", "value added tax",
			"siren identification no", "numéro d'identification",
			"taxe sur la valeur ajoutée", "n° tva", "numéro de tva",
		},
		ContextWindow: 50,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.3,
	}
}

func germanyVATConfig() Config {
	return Config{
		EntityType: "GERMANY_VAT",
		Language:   "de",
		Patterns: []PatternConfig{
			{Name: "germany vat nine digit", Regex: `\b[1-9][0-9]{8}\b`, BaseScore: 1.0},
			{Name: "germany vat slashed", Regex: `\b[1-9][0-9]{2}/?[0-9]{4}/?[0-9]{4}\b`, BaseScore: 1.0},
			{Name: "germany vat ust-idnr", Regex: `\b[Dd][Ee] ?[0-9]{3}[ ,]?[0-9]{3}[ ,]?[0-9]{3}\b`, BaseScore: 1.0},
		},
		StripChars: " ,/",
		ContextKeywords: []string{
			"vat number", "vat no", "vat#", "mwst", "mehrwertsteuer",
			"mehrwertsteuer identifikationsnummer", "mehrwertsteuer nummer",
		},
		ContextWindow:  300,
		ContextPolicy:  contextscore.PolicyAdditive,
		ContextBoost:   0.15,
		NoContextDecay: 0.5,
	}
}

func netherlandsNationalIDConfig() Config {
	return Config{
		EntityType: "NETHERLANDS_NATIONAL_ID",
		Language:   "nl",
		Patterns: []PatternConfig{
			{Name: "bsn", Regex: `\b\d{9}\b`, BaseScore: 0.7},
		},
		Checksum:          checksum.NetherlandsNationalID,
		ChecksumPassScore: 0.7,
		ContextKeywords: []string{
			"burgerservicenummer", "bsn", "national identification number",
			"national id", "identificatienummer", "id number", "nummer",
		},
		ContextWindow: 50,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.3,
	}
}

func nzHealthNumberConfig() Config {
	return Config{
		EntityType: "NZ_HEALTH_NUMBER",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "nhi old format", Regex: `\b[A-HJ-NP-Z]{3}\d{4}\b`, BaseScore: 0.5},
			{Name: "nhi new format", Regex: `\b[A-HJ-NP-Z]{3}\d{2}[A-HJ-NP-Z]\d\b`, BaseScore: 0.5},
		},
		Checksum:          checksum.NZHealthNumber,
		ChecksumPassScore: 0.7,
		ContextKeywords: []string{
			"health number", "nhi number", "nhi", "ministry of health",
			"new zealand health number", "nz health number", "health id",
			"medical number", "medical record", "national health identifier",
		},
		ContextWindow: 50,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.3,
	}
}

func spainDNIConfig() Config {
	return Config{
		EntityType: "SPAIN_DNI",
		Language:   "es",
		Patterns: []PatternConfig{
			{Name: "dni", Regex: `\b\d{8}[A-HJ-NP-TV-Z]\b`, BaseScore: 0.7},
		},
		Checksum: checksum.SpainDNI,
		ContextKeywords: []string{
			"dni", "documento nacional de identidad", "national id",
			"identificación nacional", "número de identificación",
			"identification number", "national identification",
		},
		ContextWindow: 50,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.3,
	}
}

func italyFiscalCodeConfig() Config {
	return Config{
		EntityType: "ITALY_FISCAL_CODE",
		Language:   "it",
		Patterns: []PatternConfig{
			{
				Name:      "fiscal code",
				Regex:     `(?i)\b[A-Z]{3}[ -]?[A-Z]{3}[ -]?\d{2}[A-EHLMPRST](?:[04][1-9]|[1256]\d|[37][01])[ -]?[A-MZ]\d{3}[A-Z]\b`,
				BaseScore: 1.0,
			},
		},
		Checksum:          checksum.ItalyFiscalCode,
		ChecksumPassScore: 1.0,
		StripChars:        " -",
		ContextKeywords: []string{
			"codice fiscale", "fiscal code", "italian tax code", "italy personal code",
		},
		ContextWindow: 50,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.3,
	}
}

func swedenNationalIDConfig() Config {
	return Config{
		EntityType: "SWEDEN_NATIONAL_ID",
		Language:   "sv",
		Patterns: []PatternConfig{
			{
				Name:      "personnummer strict",
				Regex:     `\b(?:19|20)?\d{2}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01])[-+]?\d{4}\b`,
				BaseScore: 1.0,
			},
			{Name: "personnummer loose", Regex: `\b\d{6}[-+]?\d{4}\b`, BaseScore: 0.5},
		},
		Checksum:          checksum.SwedenNationalID,
		ChecksumPassScore: 0.7,
		StripChars:        "-+",
		ContextKeywords: []string{
			"personnummer", "personal id", "id number", "id no",
			"identification number", "identity number", "id-nummer",
			"identitetshandling", "skatteidentifikationsnummer",
		},
		ContextWindow: 50,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.3,
	}
}

func usSSNITINConfig() Config {
	return Config{
		EntityType: "US_SSN_ITIN",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "itin unformatted", Regex: `\b9\d{2}[7-8]\d{5}\b`, BaseScore: 1.0},
			{Name: "itin hyphenated", Regex: `\b9\d{2}-[7-8]\d-\d{4}\b`, BaseScore: 1.0},
			{Name: "itin spaced", Regex: `\b9\d{2} [7-8]\d \d{4}\b`, BaseScore: 1.0},
			{Name: "itin dotted", Regex: `\b9\d{2}\.[7-8]\d\.\d{4}\b`, BaseScore: 1.0},
			{Name: "ssn formatted", Regex: `\b\d{3}[- ]\d{2}[- ]\d{4}\b`, BaseScore: 0.85},
			{Name: "ssn unformatted", Regex: `\b\d{9}\b`, BaseScore: 0.5},
		},
		StripChars: "-. ",
		PostFilter: validSSNStructure,
		ContextKeywords: []string{
			"social security number", "ssa number", "social security", "ssn",
			"itin", "taxpayer identification number", "tax id", "ssn#",
			"itin#", "taxpayer id", "security number",
		},
		ContextWindow:  50,
		ContextPolicy:  contextscore.PolicyAdditive,
		ContextBoost:   0.4,
		NoContextDecay: 0.5,
	}
}

// validSSNStructure rejects digit strings that can never be an issued SSN
// or ITIN: wrong length, repeated digits, or reserved area/group/serial
// blocks.
func validSSNStructure(stripped string) bool {
	if len(stripped) != 9 {
		return false
	}
	allSame := true
	for i := 0; i < 9; i++ {
		if stripped[i] < '0' || stripped[i] > '9' {
			return false
		}
		if stripped[i] != stripped[0] {
			allSame = false
		}
	}
	if allSame {
		return false
	}

	area, group, serial := stripped[:3], stripped[3:5], stripped[5:]
	if area == "000" || area == "666" || area == "900" {
		return false
	}
	if group == "00" || serial == "0000" {
		return false
	}
	return true
}

func germanDriversLicenseConfig() Config {
	return Config{
		EntityType: "GERMAN_DRIVERS_LICENSE",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "license number", Regex: `\b[A-Za-z0-9]\d{2}[A-Za-z0-9]{6}\d[A-Za-z0-9]\b`, BaseScore: 0.5},
		},
		Checksum: germanLicensePlausible,
		ContextKeywords: []string{
			"führerschein", "fuhrerschein", "fuehrerschein",
			"führerscheinnummer", "fuhrerscheinnummer", "fuehrerscheinnummer",
			"ausstellungsdatum", "ausstellungsort", "ausstellende behörde",
			"permis de conduire", "driver license", "driver's license",
			"drivers license", "driver licence", "driving licence",
			"driving license", "driving permit", "driverlic", "driv lic",
			"dl#", "dlno",
		},
		ContextWindow:  300,
		ContextPolicy:  contextscore.PolicyAdditive,
		ContextBoost:   0.4,
		NoContextDecay: 0.5,
	}
}

// germanLicensePlausible is a structural plausibility check: German license
// numbers are 11 characters mixing digits and letters. The published format
// has no documented check digit.
func germanLicensePlausible(number string) bool {
	if len(number) != 11 {
		return false
	}
	hasDigit, hasLetter := false, false
	for i := 0; i < len(number); i++ {
		c := number[i]
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'):
			hasLetter = true
		default:
			return false
		}
	}
	return hasDigit && hasLetter
}

func usDriversLicenseConfig() Config {
	return Config{
		EntityType: "US_DRIVERS_LICENSE",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "license number", Regex: `\b[A-Z]{1,2}\d{5,8}\b`, BaseScore: 0.5},
		},
		ContextKeywords: []string{
			"driver's license", "drivers license", "driver license",
			"driving license", "license", "permit", "dl#", "identification",
		},
		SecondaryKeywords: usStateNames(),
		ContextWindow:     50,
		ContextPolicy:     contextscore.PolicyOverride,
		OverrideScores: contextscore.OverrideScores{
			Both:      1.0,
			Keyword:   0.75,
			Secondary: 0.5,
			None:      0.25,
		},
	}
}

func creditCardIssuerConfig() Config {
	return Config{
		EntityType: "CREDIT_CARD_ISSUER",
		Patterns: []PatternConfig{
			{Name: "visa", Regex: `\b4[0-9]{12}(?:[0-9]{3})?\b`, BaseScore: 0.85},
			{Name: "mastercard", Regex: `\b5[1-5][0-9]{14}\b`, BaseScore: 0.85},
			{Name: "american express", Regex: `\b3[47][0-9]{13}\b`, BaseScore: 0.85},
			{Name: "diners club", Regex: `\b3(?:0[0-5]|[68][0-9])[0-9]{11}\b`, BaseScore: 0.85},
			{Name: "discover", Regex: `\b6(?:011|5[0-9]{2})[0-9]{12}\b`, BaseScore: 0.85},
			{Name: "jcb", Regex: `\b(?:2131|1800|35[0-9]{3})[0-9]{11}\b`, BaseScore: 0.85},
		},
		Checksum: checksum.Luhn,
		ContextKeywords: []string{
			"credit card", "card number", "card no", "cc#", "card holder",
		},
		ContextWindow: 50,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.15,
	}
}

func swedenIBANConfig() Config {
	return Config{
		EntityType: "SWEDEN_IBAN",
		Language:   "sv",
		Patterns: []PatternConfig{
			{Name: "iban se", Regex: `\bSE\d{22}\b`, BaseScore: 0.5},
		},
		Checksum:          checksum.IBAN,
		ChecksumPassScore: 0.5,
		ContextKeywords: []string{
			"iban", "sweden iban", "international bank account number",
			"bankkonto", "kontonummer", "iban nummer", "bank code",
			"bank identifier",
		},
		ContextWindow: 100,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.5,
	}
}

func euVATConfig() Config {
	return Config{
		EntityType: "EU_VAT",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "vat general", Regex: `\b[A-Z]{2}[- ]?\d{8,12}\b`, BaseScore: 0.5},
		},
		StripChars: "- ",
		ContextKeywords: []string{
			"vat", "value added tax", "vat number", "vat identification",
			"tva", "moms", "número de iva", "n° tva", "identificación de iva",
			"ustid", "btw", "iva", "mva",
		},
		ContextWindow: 100,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.5,
	}
}

func netherlandsVATConfig() Config {
	return Config{
		EntityType: "NETHERLANDS_VAT",
		Language:   "nl",
		Patterns: []PatternConfig{
			{Name: "vat", Regex: `\b\d{9}B\d{2}\b`, BaseScore: 0.5},
		},
		Checksum:          checksum.NetherlandsVAT,
		ChecksumPassScore: 0.5,
		ContextKeywords: []string{
			"btw", "vat number", "vat id", "netherlands vat", "btw-nummer",
			"btw-id", "btw nummer", "btw identificatienummer",
		},
		ContextWindow: 50,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.4,
	}
}

func germanyBICSwiftConfig() Config {
	return Config{
		EntityType: "GERMANY_BIC_SWIFT",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "bic de short", Regex: `\b[A-Za-z]{4}DE[A-Za-z0-9]{2}\b`, BaseScore: 0.7},
			{Name: "bic de long", Regex: `\b[A-Za-z]{4}DE[A-Za-z0-9]{5}\b`, BaseScore: 0.7},
			{Name: "bic short", Regex: `\b[A-Z]{6}[A-Z0-9]{2}\b`, BaseScore: 0.7},
			{Name: "bic long", Regex: `\b[A-Z]{6}[A-Z0-9]{5}\b`, BaseScore: 0.7},
		},
		ContextKeywords: []string{
			"bic", "swift", "swift code", "bic code", "bank identifier code",
			"bank code", "código swift", "código bic", "code bic", "code swift",
		},
		ContextWindow: 300,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.3,
	}
}

func australiaBankAccountConfig() Config {
	known := `\b(?:` + strings.Join(knownBSBNumbers(), "|") + `)-\d{6,10}\b`
	return Config{
		EntityType: "AUSTRALIA_BANK_ACCOUNT",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "known bsb account", Regex: known, BaseScore: 1.0},
			{Name: "bsb account", Regex: `\b\d{3}-\d{3}-\d{6,10}\b`, BaseScore: 0.85},
			{Name: "bsb", Regex: `\b\d{3}-\d{3}\b`, BaseScore: 0.8},
			{Name: "account", Regex: `\b\d{6,10}\b`, BaseScore: 0.5},
		},
		ContextKeywords: []string{
			"bank account", "account number", "australia bank account",
			"acct num", "swift bank code", "correspondent bank",
			"account holder", "bank details", "banking information",
			"fund transfers", "bank charges", "account number with bsb",
			"acc no. with bsb code", "bsb",
		},
		ContextWindow:  100,
		ContextPolicy:  contextscore.PolicyAdditive,
		ContextBoost:   0.1,
		NoContextDecay: 0.3,
		MinKeepScore:   0.31,
	}
}

// knownBSBNumbers lists BSB codes of operating Australian branches. A BSB
// prefix from this list promotes a BSB-plus-account match to full
// confidence.
func knownBSBNumbers() []string {
	return []string{
		"012-785", "012-911", "013-961", "016-936", "016-985", "032-139",
		"033-141", "035-825", "062-136", "062-707", "062-904", "064-159",
		"085-645", "087-600", "105-069", "105-083", "105-110", "105-133",
		"105-141", "105-146", "105-152", "257-019", "257-028", "257-037",
		"257-046", "257-055", "257-064", "257-073", "257-082", "257-091",
		"257-100", "257-109", "257-118", "257-127", "257-136", "257-145",
		"257-154", "257-163", "257-172", "257-181", "257-190", "257-199",
		"257-208", "257-217", "257-235", "257-244", "257-253", "257-262",
		"257-271", "257-280", "257-289", "257-298", "482-158", "482-160",
		"484-095", "484-113", "484-121", "484-122", "484-123", "484-129",
		"484-133", "484-191", "484-192", "484-193", "484-194", "484-482",
		"484-552", "484-799", "484-888", "484-911", "484-915", "732-139",
		"733-141", "762-136", "762-707", "762-904", "764-159", "802-887",
		"803-110", "803-136", "803-420", "803-421", "807-125", "807-126",
		"808-269", "808-270", "808-271", "808-272", "808-273", "808-274",
		"808-275", "808-276", "808-277",
	}
}

func franceNationalIDConfig() Config {
	return Config{
		EntityType: "FRANCE_NATIONAL_ID",
		Language:   "fr",
		Patterns: []PatternConfig{
			{Name: "insee", Regex: `\b[123]\d{12}\b`, BaseScore: 0.9},
		},
		ContextKeywords: []string{
			"sécurité sociale", "numéro de sécurité sociale",
			"numéro d'identité", "carte nationale d'identité",
			"national id", "insee",
		},
		ContextWindow: 50,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.1,
	}
}

func spainSSNConfig() Config {
	return Config{
		EntityType: "SPAIN_SSN",
		Language:   "es",
		Patterns: []PatternConfig{
			{Name: "ssn provinced", Regex: `\b[0-6][0-9][ -]?[0-9]{8}[ -]?[0-9]{2}\b`, BaseScore: 0.5},
			{Name: "ssn slashed", Regex: `\b\d{2}/?\d{7,8}/?\d{2}\b`, BaseScore: 0.5},
		},
		Checksum:          checksum.SpainSSN,
		ChecksumPassScore: 0.7,
		StripChars:        " -/",
		ContextKeywords: []string{
			"ssn", "ssn#", "socialsecurityno", "social security no",
			"social security number", "número de la seguridad social",
		},
		ContextWindow: 50,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.3,
	}
}

func spainPassportConfig() Config {
	return Config{
		EntityType: "SPAIN_PASSPORT",
		Language:   "es",
		Patterns: []PatternConfig{
			{Name: "passport", Regex: `\b[A-Za-z0-9]{8,9}\b`, BaseScore: 0.4},
		},
		ContextKeywords: []string{
			"passport", "passport number", "número de pasaporte",
			"spanish passport", "pasaporte",
		},
		SecondaryKeywords: []string{
			"date", "fecha", "expedition date", "fecha de expedición",
		},
		ContextWindow: 100,
		ContextPolicy: contextscore.PolicyOverride,
		OverrideScores: contextscore.OverrideScores{
			Both:      1.0,
			Keyword:   0.8,
			Secondary: 0.4,
			None:      0.4,
		},
		MinKeepScore: 0.41,
	}
}

func canadaSINConfig() Config {
	return Config{
		EntityType: "CANADA_SIN",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "sin formatted", Regex: `\b\d{3}[- ]\d{3}[- ]\d{3}\b`, BaseScore: 0.85},
			{Name: "sin unformatted", Regex: `\b\d{9}\b`, BaseScore: 0.85},
		},
		Checksum:   checksum.Luhn,
		StripChars: "- ",
		ContextKeywords: []string{
			"sin", "sin#", "social insurance number", "social insurance",
			"canadian social insurance", "insurance number",
		},
		ContextWindow: 50,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.15,
	}
}

func medicalNumberConfig() Config {
	return Config{
		EntityType: "MEDICAL_NUMBER",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "npi", Regex: `\bNPI[0-9]{10}\b`, BaseScore: 1.0},
			{Name: "opni", Regex: `\bOPNI[0-9]{10}\b`, BaseScore: 1.0},
		},
	}
}

func medicalRecordNumberConfig() Config {
	return Config{
		EntityType: "MEDICAL_RECORD_NUMBER",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "mrn labelled", Regex: `(?i)\b(?:medical\srecord\snumber|person\snumber|mrn)\s[0-9]{6}\b`, BaseScore: 0.9},
			{Name: "mrn bare", Regex: `\b[0-9]{6}\b`, BaseScore: 0.5},
		},
		ContextKeywords: []string{
			"medical record number", "person number", "mrn",
		},
		ContextWindow: 20,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.1,
	}
}

func canadaDriversLicenseConfig() Config {
	return Config{
		EntityType: "CANADA_DRIVERS_LICENSE",
		Language:   "en",
		Patterns: []PatternConfig{
			{Name: "license provinced", Regex: `(?i)\b\d{8}\s+(?:sk|ab|bc|mb|nb|nl|ns|nt|nu|on|pe|qc|yt)\s+license number\b`, BaseScore: 1.0},
			{Name: "license labelled", Regex: `(?i)\b\d{8}\s+license number\b`, BaseScore: 0.85},
			{Name: "ontario license", Regex: `\b[A-Z]\d{4}-\d{5}-\d{4}\b`, BaseScore: 0.95},
			{Name: "quebec license", Regex: `\b[A-Za-z]\d{12}\b`, BaseScore: 0.9},
			{Name: "province number", Regex: `\b[A-Za-z]+\s+\d{8}\b`, BaseScore: 0.4},
		},
		ContextKeywords: []string{
			"driver", "license", "licence", "permit", "province", "canadian",
			"driving license number", "driver's license", "driving permit",
			"provincial", "license number", "dln",
		},
		ContextWindow:  100,
		ContextPolicy:  contextscore.PolicyAdditive,
		ContextBoost:   0.3,
		NoContextDecay: 0.5,
		MinKeepScore:   0.25,
	}
}

func franceDriversLicenseConfig() Config {
	return Config{
		EntityType: "FRANCE_DRIVERS_LICENSE",
		Language:   "fr",
		Patterns: []PatternConfig{
			{Name: "license dated", Regex: `\b\d{2}(?:0[1-9]|1[0-2])(?:0[1-9]|[1-9]\d|2[AaBb])\d{6}\b`, BaseScore: 1.0},
			{Name: "license mixed", Regex: `\b[0-9A-Za-z]{12}\b`, BaseScore: 0.3, Checksum: singleLetterSerial},
		},
		ContextKeywords: []string{
			"permis de conduire", "numéro de permis", "licence de conduire",
		},
		ContextWindow: 50,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.35,
	}
}

// singleLetterSerial accepts twelve-character serials mixing digits with
// exactly one letter. All-digit candidates are covered by the dated
// license pattern instead.
func singleLetterSerial(serial string) bool {
	if len(serial) != 12 {
		return false
	}
	letters := 0
	for i := 0; i < len(serial); i++ {
		c := serial[i]
		switch {
		case c >= '0' && c <= '9':
		case (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'):
			letters++
		default:
			return false
		}
	}
	return letters == 1
}

func netherlandsDriversLicenseConfig() Config {
	return Config{
		EntityType: "NETHERLANDS_DRIVERS_LICENSE",
		Language:   "nl",
		Patterns: []PatternConfig{
			{Name: "license number", Regex: `\b\d{10}\b`, BaseScore: 0.7},
		},
		ContextKeywords: []string{
			"rijbewijs", "driver's license", "licentienummer",
			"license number", "drivers license", "nummer rijbewijs",
		},
		ContextWindow: 300,
		ContextPolicy: contextscore.PolicyAdditive,
		ContextBoost:  0.3,
	}
}

func usStateNames() []string {
	return []string{
		"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
		"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
		"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
		"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
		"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
		"New Hampshire", "New Jersey", "New Mexico", "New York",
		"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon",
		"Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
		"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington",
		"West Virginia", "Wisconsin", "Wyoming",
	}
}
