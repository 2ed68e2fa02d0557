// Package orderid generates the short human-facing order codes.
package orderid

import (
	"crypto/rand"
	"math/big"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	alphabet      = "1234567890ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	defaultLength = 10
)

type generator struct {
	length int
}

// NewGenerator returns a generator producing codes of cfg.Order.CodeLength characters.
func NewGenerator(cfg *config.Config) service.OrderIDGenerator {
	length := defaultLength
	if cfg.Order != nil && cfg.Order.CodeLength > 0 {
		length = cfg.Order.CodeLength
	}

	return &generator{length: length}
}

func (g *generator) Generate() (string, error) {
	size := big.NewInt(int64(len(alphabet)))
	code := make([]byte, g.length)
	for i := range code {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}
