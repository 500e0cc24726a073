package nhi

// The alphabet for letter positions is A-Z with I and O removed, a
// visual-ambiguity rule from HISO 10046:2023. Both format checks and the
// character code table below assume input already folded to uppercase.

const nhiLength = 7

func isNHILetter(c byte) bool {
	return c >= 'A' && c <= 'Z' && c != 'I' && c != 'O'
}

func isNHIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// matchesOldFormat reports whether s is 3 letters followed by 4 digits.
func matchesOldFormat(s string) bool {
	if len(s) != nhiLength {
		return false
	}
	return isNHILetter(s[0]) && isNHILetter(s[1]) && isNHILetter(s[2]) &&
		isNHIDigit(s[3]) && isNHIDigit(s[4]) && isNHIDigit(s[5]) && isNHIDigit(s[6])
}

// matchesNewFormat reports whether s is 3 letters, 2 digits, 2 letters.
func matchesNewFormat(s string) bool {
	if len(s) != nhiLength {
		return false
	}
	return isNHILetter(s[0]) && isNHILetter(s[1]) && isNHILetter(s[2]) &&
		isNHIDigit(s[3]) && isNHIDigit(s[4]) &&
		isNHILetter(s[5]) && isNHILetter(s[6])
}

// charCode maps a digit to its own value and a letter to 1-24 over the
// alphabet with I and O removed (A=1 ... H=8, J=9 ... N=13, P=14 ... Z=24).
// Callers must only pass characters admitted by the format checks.
func charCode(c byte) int {
	if isNHIDigit(c) {
		return int(c - '0')
	}
	code := int(c-'A') + 1
	if c > 'I' {
		code--
	}
	if c > 'O' {
		code--
	}
	return code
}

// checksum is the weighted sum over the first six characters: position i
// (0-based) carries weight 7-i, so weights run 7 down to 2.
func checksum(s string) int {
	sum := 0
	for i := 0; i < nhiLength-1; i++ {
		sum += charCode(s[i]) * (nhiLength - i)
	}
	return sum
}

// oldCheckDigitOK applies the modulo 11 rule. A checksum divisible by 11
// has no valid completion: the standard rejects it outright rather than
// assigning it a check digit, so rem == 0 is a hard failure here.
func oldCheckDigitOK(s string) bool {
	rem := checksum(s) % 11
	if rem == 0 {
		return false
	}
	return charCode(s[6]) == (11-rem)%10
}

// newCheckCharacterOK applies the modulo 23 rule. The expected value is
// always in 1..23 and therefore always representable as an allowed
// letter, so there is no rejection case analogous to the old format.
func newCheckCharacterOK(s string) bool {
	return charCode(s[6]) == 23-checksum(s)%23
}
