package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// Codes span [100000, 999999]: always six digits, never a leading zero.
const (
	codeMin   = 100000
	codeRange = 900000
)

// GenerateCode draws a uniform random 6 digit numeric code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeRange))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}

// CodeIssuer mints box codes together with a MAC token proving the code
// was issued by a holder of the signing secret.
type CodeIssuer struct {
	signer *Signer
}

func NewCodeIssuer(signer *Signer) *CodeIssuer {
	return &CodeIssuer{signer: signer}
}

// Issue returns a random code and its signed token. The code is
// advisory: uniqueness is the store's concern and callers re-issue on a
// reported collision.
func (c *CodeIssuer) Issue() (code, token string, err error) {
	code, err = GenerateCode()
	if err != nil {
		return "", "", err
	}
	return code, c.signer.Sign(code), nil
}
