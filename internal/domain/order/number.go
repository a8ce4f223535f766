package order

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"storefront/internal/pkg/clock"
)

const suffixLen = 4

var suffixSpace = big.NewInt(36 * 36 * 36 * 36)

// NumberGenerator produces "<prefix>-<unix seconds>-<4 base36 chars>".
// Numbers are human friendly, not unique; the store enforces uniqueness.
type NumberGenerator struct {
	prefix string
	clock  clock.Clock
	random io.Reader
}

func NewNumberGenerator(prefix string, clk clock.Clock) *NumberGenerator {
	return &NumberGenerator{prefix: prefix, clock: clk, random: rand.Reader}
}

func NewNumberGeneratorWithReader(prefix string, clk clock.Clock, random io.Reader) *NumberGenerator {
	return &NumberGenerator{prefix: prefix, clock: clk, random: random}
}

func (g *NumberGenerator) Next() (string, error) {
	n, err := rand.Int(g.random, suffixSpace)
	if err != nil {
		return "", fmt.Errorf("order number suffix: %w", err)
	}

	suffix := strings.ToUpper(strconv.FormatInt(n.Int64(), 36))
	if len(suffix) < suffixLen {
		suffix = strings.Repeat("0", suffixLen-len(suffix)) + suffix
	}

	return fmt.Sprintf("%s-%d-%s", g.prefix, g.clock.Now().Unix(), suffix), nil
}
