// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package checksum

// NetherlandsNationalID validates a Dutch burgerservicenummer (BSN):
// nine digits weighted 9 down to 1, with the weighted sum divisible by 11.
func NetherlandsNationalID(id string) bool {
	if len(id) != 9 || !allDigits(id) {
		return false
	}

	sum := 0
	weight := 9
	for i := 0; i < 9; i++ {
		sum += int(id[i]-'0') * weight
		weight--
	}

	return sum%11 == 0
}

// NetherlandsVAT validates a Dutch VAT number: nine digits satisfying the
// BSN elevenproef, the letter B, and a two-digit establishment suffix.
func NetherlandsVAT(vat string) bool {
	if len(vat) != 12 || vat[9] != 'B' {
		return false
	}
	if !allDigits(vat[10:]) {
		return false
	}
	return NetherlandsNationalID(vat[:9])
}

// nhiLetterValue maps NHI alphabet letters to their numeric values
// (A=10 .. Z=35). I and O are excluded from the NHI alphabet.
func nhiLetterValue(c byte) (int, bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' || c == 'I' || c == 'O' {
		return 0, false
	}
	return int(c-'A') + 10, true
}

// NZHealthNumber validates a New Zealand NHI number using modulus 11 with
// letter substitution: the first six positions are weighted 7,6,5,4,3,2 and
// the seventh position is the check digit. The old format is three letters
// followed by four digits; the new format replaces the sixth position with
// a letter. Eight-character input is accepted with the same seven-position
// layout, mirroring the reference implementation.
func NZHealthNumber(number string) bool {
	if len(number) != 7 && len(number) != 8 {
		return false
	}

	var values [7]int
	for i := 0; i < 3; i++ {
		v, ok := nhiLetterValue(number[i])
		if !ok {
			return false
		}
		values[i] = v
	}

	newFormat := number[5] < '0' || number[5] > '9'
	if newFormat {
		for i := 3; i < 5; i++ {
			if number[i] < '0' || number[i] > '9' {
				return false
			}
			values[i] = int(number[i] - '0')
		}
		v, ok := nhiLetterValue(number[5])
		if !ok {
			return false
		}
		values[5] = v
	} else {
		for i := 3; i < 6; i++ {
			if number[i] < '0' || number[i] > '9' {
				return false
			}
			values[i] = int(number[i] - '0')
		}
	}
	if number[6] < '0' || number[6] > '9' {
		return false
	}
	values[6] = int(number[6] - '0')

	weights := [6]int{7, 6, 5, 4, 3, 2}
	sum := 0
	for i := 0; i < 6; i++ {
		sum += values[i] * weights[i]
	}

	return (sum+values[6])%11 == 0
}
