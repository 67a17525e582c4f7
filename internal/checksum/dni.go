// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package checksum

// dniLetters is the official DNI control-letter table, indexed by the
// numeric part of the document modulo 23.
const dniLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// SpainDNI validates a Spanish Documento Nacional de Identidad: eight
// digits followed by the control letter dniLetters[number mod 23].
func SpainDNI(dni string) bool {
	if len(dni) != 9 {
		return false
	}

	digits := dni[:8]
	if !allDigits(digits) {
		return false
	}

	number := 0
	for i := 0; i < 8; i++ {
		number = number*10 + int(digits[i]-'0')
	}

	letter := dni[8]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}

	return dniLetters[number%23] == letter
}

// SpainSSN validates a Spanish social security number: the last two digits
// are the control value, equal to the remaining leading digits modulo 97.
// The body is computed incrementally because it exceeds eight digits.
func SpainSSN(number string) bool {
	if len(number) < 10 || !allDigits(number) {
		return false
	}

	body := number[:len(number)-2]
	control := int(number[len(number)-2]-'0')*10 + int(number[len(number)-1]-'0')

	remainder := 0
	for i := 0; i < len(body); i++ {
		remainder = (remainder*10 + int(body[i]-'0')) % 97
	}

	return remainder == control
}
