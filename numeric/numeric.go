package numeric

import (
	"errors"
	"math/big"
)

// ErrDivByZero indicates an attempted division by the additive identity.
var ErrDivByZero = errors.New("numeric: division by zero")

// Z is an arbitrary-precision signed integer.
type Z struct {
	v *big.Int
}

// ZeroZ returns the additive identity 0.
func ZeroZ() Z { return Z{v: big.NewInt(0)} }

// OneZ returns the multiplicative identity 1.
func OneZ() Z { return Z{v: big.NewInt(1)} }

// NewZ builds a Z from an int64.
func NewZ(x int64) Z { return Z{v: big.NewInt(x)} }

// NewZFromBig adopts a *big.Int by value (the argument is cloned, never aliased).
func NewZFromBig(x *big.Int) Z {
	if x == nil {
		return ZeroZ()
	}
	return Z{v: new(big.Int).Set(x)}
}

func (z Z) ensure() *big.Int {
	if z.v == nil {
		return big.NewInt(0)
	}
	return z.v
}

// Big exposes the underlying big.Int (a defensive copy).
func (z Z) Big() *big.Int { return new(big.Int).Set(z.ensure()) }

// Clone returns an independent copy of z.
func (z Z) Clone() Z { return Z{v: new(big.Int).Set(z.ensure())} }

// Sign returns -1, 0, or +1.
func (z Z) Sign() int { return z.ensure().Sign() }

// IsZero reports whether z == 0.
func (z Z) IsZero() bool { return z.Sign() == 0 }

// Cmp compares z to other: -1, 0, +1.
func (z Z) Cmp(other Z) int { return z.ensure().Cmp(other.ensure()) }

// Add returns z + other.
func (z Z) Add(other Z) Z { return Z{v: new(big.Int).Add(z.ensure(), other.ensure())} }

// Sub returns z - other.
func (z Z) Sub(other Z) Z { return Z{v: new(big.Int).Sub(z.ensure(), other.ensure())} }

// Mul returns z * other.
func (z Z) Mul(other Z) Z { return Z{v: new(big.Int).Mul(z.ensure(), other.ensure())} }

// Neg returns -z.
func (z Z) Neg() Z { return Z{v: new(big.Int).Neg(z.ensure())} }

// Abs returns |z|.
func (z Z) Abs() Z { return Z{v: new(big.Int).Abs(z.ensure())} }

// QuoExact returns z / other assuming exact divisibility (no remainder).
// Precondition: other != 0 and other divides z.
func (z Z) QuoExact(other Z) Z {
	return Z{v: new(big.Int).Quo(z.ensure(), other.ensure())}
}

// GCD returns the non-negative greatest common divisor of z and other.
func (z Z) GCD(other Z) Z {
	return Z{v: new(big.Int).GCD(nil, nil, new(big.Int).Abs(z.ensure()), new(big.Int).Abs(other.ensure()))}
}

// LCM returns the non-negative least common multiple of z and other.
func (z Z) LCM(other Z) Z {
	if z.IsZero() || other.IsZero() {
		return ZeroZ()
	}
	g := z.GCD(other)
	return z.QuoExact(g).Mul(other).Abs()
}

// String renders the decimal representation.
func (z Z) String() string { return z.ensure().String() }

// Q is an arbitrary-precision rational number, always kept in lowest terms.
type Q struct {
	v *big.Rat
}

// ZeroQ returns the additive identity 0/1.
func ZeroQ() Q { return Q{v: big.NewRat(0, 1)} }

// OneQ returns the multiplicative identity 1/1.
func OneQ() Q { return Q{v: big.NewRat(1, 1)} }

// NewQ builds num/den, reduced to lowest terms. Precondition: den != 0.
func NewQ(num, den int64) (Q, error) {
	if den == 0 {
		return Q{}, ErrDivByZero
	}
	return Q{v: big.NewRat(num, den)}, nil
}

// NewQFromZ embeds an integer as a rational.
func NewQFromZ(z Z) Q { return Q{v: new(big.Rat).SetInt(z.ensure())} }

// NewQFromZZ builds num/den, reduced to lowest terms. Precondition: den != 0.
func NewQFromZZ(num, den Z) (Q, error) {
	if den.IsZero() {
		return Q{}, ErrDivByZero
	}
	return Q{v: new(big.Rat).SetFrac(num.ensure(), den.ensure())}, nil
}

func (q Q) ensure() *big.Rat {
	if q.v == nil {
		return big.NewRat(0, 1)
	}
	return q.v
}

// Clone returns an independent copy of q.
func (q Q) Clone() Q { return Q{v: new(big.Rat).Set(q.ensure())} }

// Sign returns -1, 0, or +1.
func (q Q) Sign() int { return q.ensure().Sign() }

// IsZero reports whether q == 0.
func (q Q) IsZero() bool { return q.Sign() == 0 }

// Cmp compares q to other: -1, 0, +1.
func (q Q) Cmp(other Q) int { return q.ensure().Cmp(other.ensure()) }

// Add returns q + other.
func (q Q) Add(other Q) Q { return Q{v: new(big.Rat).Add(q.ensure(), other.ensure())} }

// Sub returns q - other.
func (q Q) Sub(other Q) Q { return Q{v: new(big.Rat).Sub(q.ensure(), other.ensure())} }

// Mul returns q * other.
func (q Q) Mul(other Q) Q { return Q{v: new(big.Rat).Mul(q.ensure(), other.ensure())} }

// Quo returns q / other. Precondition: other != 0.
func (q Q) Quo(other Q) (Q, error) {
	if other.IsZero() {
		return Q{}, ErrDivByZero
	}
	return Q{v: new(big.Rat).Quo(q.ensure(), other.ensure())}, nil
}

// Neg returns -q.
func (q Q) Neg() Q { return Q{v: new(big.Rat).Neg(q.ensure())} }

// Float64 returns the nearest float64 approximation (for diagnostics only,
// never for exact comparisons).
func (q Q) Float64() float64 {
	f, _ := q.ensure().Float64()
	return f
}

// Num returns the reduced numerator.
func (q Q) Num() Z { return Z{v: new(big.Int).Set(q.ensure().Num())} }

// Denom returns the reduced, always-positive denominator.
func (q Q) Denom() Z { return Z{v: new(big.Int).Set(q.ensure().Denom())} }

// String renders as "num/den" (den elided when 1).
func (q Q) String() string { return q.ensure().RatString() }

// Max returns the greater of a and b.
func Max(a, b Q) Q {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Min returns the lesser of a and b.
func Min(a, b Q) Q {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
