// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package checksum

// IBAN validates an International Bank Account Number using the ISO 7064
// MOD 97-10 algorithm: the first four characters move to the end, letters
// map to 10-35, and the resulting decimal number must leave remainder 1
// modulo 97. The remainder is computed incrementally since IBANs exceed
// any native integer width.
func IBAN(iban string) bool {
	if len(iban) < 5 || len(iban) > 34 {
		return false
	}

	rearranged := iban[4:] + iban[:4]
	remainder := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		switch {
		case c >= '0' && c <= '9':
			remainder = (remainder*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			remainder = (remainder*100 + v) % 97
		case c >= 'a' && c <= 'z':
			v := int(c-'a') + 10
			remainder = (remainder*100 + v) % 97
		default:
			return false
		}
	}

	return remainder == 1
}

// FranceVAT validates a French VAT number ("FR" followed by an 11-digit
// body). The numeric body must be divisible by 97. Validation keys that
// contain letters fail, matching the reference behavior.
func FranceVAT(vat string) bool {
	if len(vat) < 13 {
		return false
	}
	if vat[0] != 'F' || vat[1] != 'R' {
		return false
	}

	body := vat[2:]
	if !allDigits(body) {
		return false
	}

	remainder := 0
	for i := 0; i < len(body); i++ {
		remainder = (remainder*10 + int(body[i]-'0')) % 97
	}
	return remainder == 0
}
