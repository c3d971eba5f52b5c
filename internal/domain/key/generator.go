package key

import (
	"crypto/rand"
	"io"
	"strings"
)

const (
	alphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	segmentCount  = 3
	segmentLength = 4
)

// bytes at or above rejectionLimit are discarded so every symbol keeps probability 1/36
const rejectionLimit = 256 - 256%len(alphabet)

// Generator produces human-typable key tokens.
// Uniqueness is not checked: the 36^12 space makes collisions an accepted risk.
type Generator interface {
	Generate() string
}

type RandomGenerator struct {
	prefix string
	source io.Reader
}

func NewRandomGenerator(prefix string) *RandomGenerator {
	return NewRandomGeneratorWithSource(prefix, rand.Reader)
}

func NewRandomGeneratorWithSource(prefix string, source io.Reader) *RandomGenerator {
	return &RandomGenerator{prefix: prefix, source: source}
}

// Generate returns PREFIX-XXXX-XXXX-XXXX. It panics only if the random
// source fails, which crypto/rand.Reader never does.
func (g *RandomGenerator) Generate() string {
	var b strings.Builder
	b.Grow(len(g.prefix) + segmentCount*(segmentLength+1))
	b.WriteString(g.prefix)

	for range segmentCount {
		b.WriteByte('-')
		for range segmentLength {
			b.WriteByte(g.symbol())
		}
	}
	return b.String()
}

func (g *RandomGenerator) symbol() byte {
	var buf [1]byte
	for {
		if _, err := io.ReadFull(g.source, buf[:]); err != nil {
			panic("key: random source failed: " + err.Error())
		}
		if int(buf[0]) < rejectionLimit {
			return alphabet[int(buf[0])%len(alphabet)]
		}
	}
}
