package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// IdentityHasher produces the one-way hash a national id is registered
// under. The salt is deployment wide so equal ids always hash equal.
type IdentityHasher struct {
	salt string
}

func NewIdentityHasher(salt string) *IdentityHasher {
	return &IdentityHasher{salt: salt}
}

func (h *IdentityHasher) HashIdentity(nationalID string) string {
	sum := sha256.Sum256([]byte(h.salt + strings.TrimSpace(nationalID)))
	return hex.EncodeToString(sum[:])
}

// ValidJMBG reports whether s has the shape of a JMBG: thirteen digits
// with a valid control digit
func ValidJMBG(s string) bool {
	if len(s) != 13 {
		return false
	}

	digits := make([]int, 13)
	for i, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
	}

	sum := 0
	for i := 0; i < 6; i++ {
		sum += (7 - i) * (digits[i] + digits[i+6])
	}
	control := 11 - sum%11
	if control > 9 {
		control = 0
	}

	return control == digits[12]
}
