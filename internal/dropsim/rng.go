package dropsim

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// RandomSource yields uniform draws in [0, 1).
type RandomSource interface {
	Float64() float64
}

// cryptoRNG draws from crypto/rand. Its runs cannot be replayed.
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	// top 53 bits fill the float64 mantissa
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// DefaultRNG returns the unseeded generator used when no seed is wanted.
func DefaultRNG() RandomSource { return cryptoRNG{} }

type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a PCG generator seeded with (seed, 0). The same seed
// always replays the same draws.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

// javaRNG is the 48-bit linear congruential generator of java.util.Random.
// The first versions of this tool drew from it, so it is kept for parity runs.
type javaRNG struct{ seed int64 }

const (
	javaMultiplier = 0x5DEECE66D
	javaAddend     = 0xB
	javaMask       = (1 << 48) - 1
)

// NewJavaRNG seeds the generator the way java.util.Random(seed) does.
func NewJavaRNG(seed int64) RandomSource {
	return &javaRNG{seed: (seed ^ javaMultiplier) & javaMask}
}

// next advances the state and returns its top bits, like Random.next(bits).
func (j *javaRNG) next(bits uint) int32 {
	j.seed = (j.seed*javaMultiplier + javaAddend) & javaMask
	return int32(j.seed >> (48 - bits))
}

// Float64 mirrors Random.nextDouble.
func (j *javaRNG) Float64() float64 {
	hi := int64(j.next(26))
	lo := int64(j.next(27))
	return float64(hi<<27+lo) * (1.0 / (1 << 53))
}

// Generator names accepted by NewRNG.
const (
	GeneratorPCG  = "pcg"
	GeneratorJava = "java"
)

// NewRNG builds a seeded generator by name. An empty name selects PCG.
func NewRNG(generator string, seed uint64) (RandomSource, error) {
	switch generator {
	case "", GeneratorPCG:
		return NewSeededRNG(seed), nil
	case GeneratorJava:
		return NewJavaRNG(int64(seed)), nil
	default:
		return nil, fmt.Errorf("unknown generator %q", generator)
	}
}

// NewSeed returns a random non-zero seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	for {
		if _, err := cryptoRand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if s := binary.LittleEndian.Uint64(b[:]); s != 0 {
			return s, nil
		}
	}
}
