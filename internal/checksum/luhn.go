// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package checksum

// Luhn validates a number using the Luhn mod-10 algorithm: every second
// digit from the right is doubled (subtracting 9 when the double exceeds 9)
// and the total must be divisible by 10. Used by payment card numbers.
func Luhn(number string) bool {
	if len(number) < 2 || !allDigits(number) {
		return false
	}

	sum := 0
	isDouble := false
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if isDouble {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		isDouble = !isDouble
	}

	return sum%10 == 0
}

// SwedenNationalID validates a Swedish personnummer. Only the last 10
// digits carry the Luhn check digit; 12-digit forms include the century.
func SwedenNationalID(id string) bool {
	if !allDigits(id) {
		return false
	}
	if len(id) > 10 {
		id = id[len(id)-10:]
	}
	if len(id) != 10 {
		return false
	}
	return Luhn(id)
}
