// Package nhi validates strings against the New Zealand Ministry of
// Health NHI validation routine, covering both number formats specified
// by HISO 10046:2023: the old format (3 letters + 4 digits, modulo 11
// check digit) and the new format (3 letters + 2 digits + 2 letters,
// modulo 23 check character).
//
// Checks are case-insensitive and purely structural: a valid result
// means the value is consistent with the standard, not that the number
// has been assigned to a person. Assignment can only be confirmed
// against the national index, which is out of scope here.
//
// NHI numbers beginning with Z are reserved for testing; parsed values
// expose this through IsTest and IsNotTest.
package nhi

import (
	"strings"

	dErrors "nhicheck/pkg/domain-errors"
)

// NHI is a domain value holding a validated NHI number.
// Invariant: the underlying string is exactly 7 uppercase ASCII
// characters and satisfies one of the two format patterns together with
// its checksum rule.
//
// Usage: construct via Parse at trust boundaries to enforce the
// invariant; direct casting bypasses validation.
type NHI string

// Parse constructs an NHI from external input. The input is folded to
// uppercase (ASCII only), classified against the two supported formats
// and checked against the matching checksum rule.
//
// Errors: returns CodeInvalidInput for every failure mode. The standard
// treats invalidity as binary, so a malformed shape and a correct shape
// with a wrong check character are deliberately indistinguishable.
func Parse(raw string) (NHI, error) {
	candidate := foldUpper(raw)
	switch {
	case matchesOldFormat(candidate):
		if oldCheckDigitOK(candidate) {
			return NHI(candidate), nil
		}
	case matchesNewFormat(candidate):
		if newCheckCharacterOK(candidate) {
			return NHI(candidate), nil
		}
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "not a valid NHI number")
}

// IsValid reports whether raw parses to a valid NHI number.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// String returns the normalized uppercase form exactly as stored.
func (n NHI) String() string {
	return string(n)
}

// IsTest reports whether this NHI is reserved for testing (first letter
// Z). Note this does not mean the number is unassigned; it means the
// value sits in the letterspace the standard sets aside for non-patient
// use.
func (n NHI) IsTest() bool {
	return strings.HasPrefix(string(n), "Z")
}

// IsNotTest reports whether this NHI is NOT reserved for testing.
func (n NHI) IsNotTest() bool {
	return !n.IsTest()
}

// Format identifies which of the two supported patterns an NHI matches.
type Format string

const (
	FormatOld Format = "old" // 3 letters + 4 digits, modulo 11 check digit
	FormatNew Format = "new" // 3 letters + 2 digits + 2 letters, modulo 23 check character
)

// Format reports which pattern this NHI matches. The check character
// decides: a trailing digit means the old format, a trailing letter the
// new format. Only meaningful on values produced by Parse.
func (n NHI) Format() Format {
	if len(n) == nhiLength && isNHILetter(n[6]) {
		return FormatNew
	}
	return FormatOld
}

// foldUpper uppercases ASCII letters byte-wise. It never changes the
// length of the input; anything outside a-z passes through untouched
// and is left for the format checks to reject.
func foldUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
