package calc

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GCD returns the greatest common divisor of two integers.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Fraction is a rational number. Denominator is never zero in a value
// produced by this package.
type Fraction struct {
	Num, Den int64
}

// Reduce returns the fraction in lowest terms with a positive denominator.
func (f Fraction) Reduce() Fraction {
	if f.Den < 0 {
		f.Num, f.Den = -f.Num, -f.Den
	}
	g := GCD(f.Num, f.Den)
	if g == 0 {
		return f
	}
	return Fraction{Num: f.Num / g, Den: f.Den / g}
}

func (f Fraction) String() string {
	if f.Den == 1 {
		return fmt.Sprintf("%d", f.Num)
	}
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// FractionOp applies one of "+", "-", "*", "/" to two fractions, returning
// the reduced result.
func FractionOp(a, b Fraction, op string) (Fraction, error) {
	if a.Den == 0 || b.Den == 0 {
		return Fraction{}, fmt.Errorf("denominator must not be zero")
	}
	var out Fraction
	switch op {
	case "+":
		out = Fraction{a.Num*b.Den + b.Num*a.Den, a.Den * b.Den}
	case "-":
		out = Fraction{a.Num*b.Den - b.Num*a.Den, a.Den * b.Den}
	case "*":
		out = Fraction{a.Num * b.Num, a.Den * b.Den}
	case "/":
		if b.Num == 0 {
			return Fraction{}, fmt.Errorf("division by zero")
		}
		out = Fraction{a.Num * b.Den, a.Den * b.Num}
	default:
		return Fraction{}, fmt.Errorf("unknown operation %q", op)
	}
	return out.Reduce(), nil
}

// PercentOf returns pct percent of value.
func PercentOf(pct, value float64) float64 {
	return pct / 100 * value
}

// WhatPercent returns what percent part is of whole.
func WhatPercent(part, whole float64) (float64, error) {
	if whole == 0 {
		return 0, fmt.Errorf("whole must not be zero")
	}
	return part / whole * 100, nil
}

// PercentChange returns the percentage change from old to new.
func PercentChange(oldVal, newVal float64) (float64, error) {
	if oldVal == 0 {
		return 0, fmt.Errorf("starting value must not be zero")
	}
	return (newVal - oldVal) / oldVal * 100, nil
}

// RandomInt returns a uniformly random integer in [min, max] using the
// platform CSPRNG.
func RandomInt(min, max int64) (int64, error) {
	if min > max {
		return 0, fmt.Errorf("min must not exceed max")
	}
	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return 0, err
	}
	return min + n.Int64(), nil
}
