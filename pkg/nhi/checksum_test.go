package nhi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The letter table skips I and O, so codes run contiguously across
// three ranges: A-H, J-N and P-Z.
func TestCharCode_LetterTable(t *testing.T) {
	for i, c := 0, byte('A'); c <= 'H'; i, c = i+1, c+1 {
		assert.Equal(t, i+1, charCode(c), "code for %c", c)
	}
	for i, c := 0, byte('J'); c <= 'N'; i, c = i+1, c+1 {
		assert.Equal(t, i+9, charCode(c), "code for %c", c)
	}
	for i, c := 0, byte('P'); c <= 'Z'; i, c = i+1, c+1 {
		assert.Equal(t, i+14, charCode(c), "code for %c", c)
	}
}

func TestCharCode_Digits(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		assert.Equal(t, int(c-'0'), charCode(c))
	}
}

func TestChecksum_WeightsPositions(t *testing.T) {
	// Z=24, A=1, C=3: 24*7 + 1*6 + 3*5 + 5*4 + 3*3 + 6*2 = 230.
	assert.Equal(t, 230, checksum("ZAC5361"))
	// The trailing character never contributes to the sum.
	assert.Equal(t, checksum("ZAC5361"), checksum("ZAC5369"))
}

func TestFormatMatchers(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		old, new bool
	}{
		{"old shape", "ZAC5361", true, false},
		{"new shape", "ZBN77VL", false, true},
		{"too short", "ZAC536", false, false},
		{"too long", "ZAC53611", false, false},
		{"letter I excluded", "IBX3656", false, false},
		{"letter O excluded", "ZBO77VL", false, false},
		{"I in check position", "ZBN77VI", false, false},
		{"lowercase not folded here", "zac5361", false, false},
		{"digit in letter position", "1AC5361", false, false},
		{"symbol", "ZAC536!", false, false},
		{"non-ASCII", "ZÄC5361", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.old, matchesOldFormat(tt.in))
			assert.Equal(t, tt.new, matchesNewFormat(tt.in))
		})
	}
}
