package numtheory

import "math/big"

var one = big.NewInt(1)

// step advances a pair (x0, x1) to (x1, x0 - q*x1).
func step(x0, x1, q *big.Int) (*big.Int, *big.Int) {
	next := new(big.Int).Mul(q, x1)
	next.Sub(x0, next)
	return x1, next
}

// ModInverse returns d with a*d ≡ 1 (mod m) and 0 <= d < m.
//
// The second result is false when a has no inverse modulo m, that is when
// gcd(a, m) != 1, or when m <= 1.
func ModInverse(a, m *big.Int) (*big.Int, bool) {
	if m == nil || a == nil || m.Cmp(one) <= 0 {
		return nil, false
	}

	r0, r1 := new(big.Int).Set(m), new(big.Int).Set(a)
	x0, x1 := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	for r1.Sign() != 0 {
		q.Div(r0, r1)
		r0, r1 = step(r0, r1, q)
		x0, x1 = step(x0, x1, q)
	}

	// r0 is gcd(a, m) up to sign; a negative a can leave it at -1.
	if r0.Sign() < 0 {
		r0.Neg(r0)
		x0.Neg(x0)
	}
	if r0.Cmp(one) != 0 {
		return nil, false
	}

	x0.Mod(x0, m)
	return x0, true
}

// ExtendedGCD returns g = gcd(a, b) and Bézout coefficients x, y with
// a*x + b*y = g. For non-negative inputs g is non-negative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	r0, r1 := new(big.Int).Set(a), new(big.Int).Set(b)
	x0, x1 := big.NewInt(1), big.NewInt(0)
	y0, y1 := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	for r1.Sign() != 0 {
		q.Div(r0, r1)
		r0, r1 = step(r0, r1, q)
		x0, x1 = step(x0, x1, q)
		y0, y1 = step(y0, y1, q)
	}

	if r0.Sign() < 0 {
		r0.Neg(r0)
		x0.Neg(x0)
		y0.Neg(y0)
	}
	return r0, x0, y0
}
