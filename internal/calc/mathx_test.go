package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{12, 18, 6},
		{17, 5, 1},
		{0, 9, 9},
		{0, 0, 0},
		{-12, 18, 6},
		{270, 192, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GCD(tt.a, tt.b), "gcd(%d, %d)", tt.a, tt.b)
	}
}

func TestFractionOp(t *testing.T) {
	tests := []struct {
		name string
		a, b Fraction
		op   string
		want Fraction
	}{
		{"add", Fraction{1, 2}, Fraction{1, 3}, "+", Fraction{5, 6}},
		{"subtract", Fraction{3, 4}, Fraction{1, 4}, "-", Fraction{1, 2}},
		{"multiply", Fraction{2, 3}, Fraction{3, 4}, "*", Fraction{1, 2}},
		{"divide", Fraction{1, 2}, Fraction{3, 4}, "/", Fraction{2, 3}},
		{"negative denominator normalized", Fraction{1, -2}, Fraction{0, 1}, "+", Fraction{-1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FractionOp(tt.a, tt.b, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFractionOp_Errors(t *testing.T) {
	_, err := FractionOp(Fraction{1, 0}, Fraction{1, 2}, "+")
	require.Error(t, err)

	_, err = FractionOp(Fraction{1, 2}, Fraction{0, 3}, "/")
	require.Error(t, err)

	_, err = FractionOp(Fraction{1, 2}, Fraction{1, 3}, "%")
	require.Error(t, err)
}

func TestFractionString(t *testing.T) {
	assert.Equal(t, "5/6", Fraction{5, 6}.String())
	assert.Equal(t, "3", Fraction{3, 1}.String())
}

func TestPercentages(t *testing.T) {
	assert.InDelta(t, 15, PercentOf(30, 50), 0.001)

	pct, err := WhatPercent(25, 200)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, pct, 0.001)

	_, err = WhatPercent(1, 0)
	require.Error(t, err)

	change, err := PercentChange(80, 100)
	require.NoError(t, err)
	assert.InDelta(t, 25, change, 0.001)

	_, err = PercentChange(0, 100)
	require.Error(t, err)
}

func TestRandomInt(t *testing.T) {
	for i := 0; i < 100; i++ {
		n, err := RandomInt(5, 10)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(5))
		assert.LessOrEqual(t, n, int64(10))
	}

	n, err := RandomInt(7, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	_, err = RandomInt(10, 5)
	require.Error(t, err)
}
