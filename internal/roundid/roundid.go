// Package roundid generates identifiers for blackjack rounds.
//
// IDs are UUIDv7 values encoded as 26-character Crockford base32 strings,
// so they sort by creation time and are short enough for a status line.
package roundid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID
const Length = 26

// Generator creates round IDs. The zero value uses crypto randomness.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a generator reading random bits from r. A nil r
// uses the uuid package's default source.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate creates a new round ID
func Generate() string {
	return (&Generator{}).Generate()
}

// Generate creates a new round ID using the generator's random source
func (g *Generator) Generate() string {
	var (
		id  uuid.UUID
		err error
	)
	if g != nil && g.rand != nil {
		id, err = uuid.NewV7FromReader(g.rand)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		// Only fails when the random source does; fall back to v4.
		id = uuid.New()
	}
	return encode(id)
}

// encode writes the 128-bit value as 26 five-bit groups, most significant
// first, with two zero padding bits at the end.
func encode(id uuid.UUID) string {
	var b strings.Builder
	b.Grow(Length)
	for i := 0; i < Length; i++ {
		bit := i * 5
		var v uint16
		for j := 0; j < 5; j++ {
			pos := bit + j
			v <<= 1
			if pos < 128 && id[pos/8]&(0x80>>(pos%8)) != 0 {
				v |= 1
			}
		}
		b.WriteByte(alphabet[v])
	}
	return b.String()
}

// Validate checks that id is a well-formed round ID
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("round ID must be exactly %d characters, got %d", Length, len(id))
	}
	for i, r := range id {
		if !strings.ContainsRune(alphabet, r) {
			return fmt.Errorf("invalid character %c at position %d", r, i)
		}
	}
	// Last character only carries 3 data bits.
	if strings.IndexByte(alphabet, id[Length-1])&0x3 != 0 {
		return fmt.Errorf("round ID has non-zero padding bits")
	}
	return nil
}
