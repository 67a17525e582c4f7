// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package checksum

// Italian fiscal code check-character tables. Positions are counted from 1
// in the official specification, so the 0-indexed even offsets here are the
// "odd" positions and use the scrambled value table.
var (
	fiscalOddLetter = [26]int{
		1, 0, 5, 7, 9, 13, 15, 17, 19, 21, 2, 4, 18,
		20, 11, 3, 6, 8, 12, 14, 16, 10, 22, 25, 24, 23,
	}
	fiscalOddDigit = [10]int{1, 0, 5, 7, 9, 13, 15, 17, 19, 21}
)

// ItalyFiscalCode validates a 16-character Italian codice fiscale. The
// first fifteen characters are summed through the positional value tables
// and the sixteenth must equal 'A' + (sum mod 26).
func ItalyFiscalCode(code string) bool {
	if len(code) != 16 {
		return false
	}

	sum := 0
	for i := 0; i < 15; i++ {
		c := code[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}

		odd := i%2 == 0
		switch {
		case c >= 'A' && c <= 'Z':
			if odd {
				sum += fiscalOddLetter[c-'A']
			} else {
				sum += int(c - 'A')
			}
		case c >= '0' && c <= '9':
			if odd {
				sum += fiscalOddDigit[c-'0']
			} else {
				sum += int(c - '0')
			}
		default:
			return false
		}
	}

	check := code[15]
	if check >= 'a' && check <= 'z' {
		check -= 'a' - 'A'
	}

	return check == byte('A'+sum%26)
}
