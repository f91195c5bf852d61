// file: internals/helpers/short_code.go
package helper

import (
	"crypto/rand"
	"math/big"

	"gorm.io/gorm"
)

// Unambiguous alphabet (no 0/O, 1/I/L)
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GenerateShortCode returns a random join/test code of length n.
func GenerateShortCode(n int) (string, error) {
	if n <= 0 {
		n = 6
	}
	out := make([]byte, n)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = codeAlphabet[idx.Int64()]
	}
	return string(out), nil
}

// EnsureUniqueCode retries GenerateShortCode until the column has no
// matching row (or attempts run out).
func EnsureUniqueCode(db *gorm.DB, table, column string, length int) (string, error) {
	for i := 0; i < 10; i++ {
		code, err := GenerateShortCode(length)
		if err != nil {
			return "", err
		}
		var count int64
		if err := db.Table(table).Where(column+" = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", gorm.ErrDuplicatedKey
}
