package shor_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shorlabs/shor-go/pkg/shor"
)

func TestFindPeriodKnownValues(t *testing.T) {
	cases := []struct {
		a, n, want int64
	}{
		{2, 15, 4},
		{7, 15, 4},
		{2, 21, 6},
		{4, 9, 3},
		{1, 15, 1},
	}

	for _, tc := range cases {
		r, err := shor.FindPeriod(big.NewInt(tc.a), big.NewInt(tc.n))
		require.NoError(t, err, "find_period(%d,%d)", tc.a, tc.n)
		assert.Equal(t, tc.want, r.Int64(), "find_period(%d,%d)", tc.a, tc.n)
	}
}

// TestFindPeriodMinimality checks the returned r against the definition of
// the multiplicative order: a^r = 1 mod n and a^k != 1 mod n for 0 < k < r.
func TestFindPeriodMinimality(t *testing.T) {
	mods := []int64{15, 21, 35, 33}
	for _, n := range mods {
		for a := int64(2); a < n; a++ {
			if shor.GCD(big.NewInt(a), big.NewInt(n)).Int64() != 1 {
				continue
			}
			r, err := shor.FindPeriod(big.NewInt(a), big.NewInt(n))
			require.NoError(t, err, "find_period(%d,%d)", a, n)

			at, err := shor.ModPow(big.NewInt(a), r, big.NewInt(n))
			require.NoError(t, err)
			require.Equal(t, int64(1), at.Int64(), "a=%d n=%d r=%s", a, n, r)

			for k := int64(1); k < r.Int64(); k++ {
				ak, err := shor.ModPow(big.NewInt(a), big.NewInt(k), big.NewInt(n))
				require.NoError(t, err)
				require.NotEqual(t, int64(1), ak.Int64(), "a=%d n=%d returned r=%s but a^%d = 1", a, n, r, k)
			}
		}
	}
}

func TestFindPeriodNotCoprime(t *testing.T) {
	_, err := shor.FindPeriod(big.NewInt(6), big.NewInt(15))
	assert.ErrorIs(t, err, shor.ErrNotCoprime)
}

func TestFindPeriodDegenerateModulus(t *testing.T) {
	for _, n := range []int64{0, 1} {
		_, err := shor.FindPeriod(big.NewInt(2), big.NewInt(n))
		assert.ErrorIs(t, err, shor.ErrBadModulus, "n=%d", n)
	}
}

func TestFindPeriodLimitExceeded(t *testing.T) {
	// The order of 2 mod 15 is 4; a ceiling of 3 must abort the scan.
	_, err := shor.FindPeriodWithLimit(big.NewInt(2), big.NewInt(15), big.NewInt(3))
	assert.ErrorIs(t, err, shor.ErrPeriodNotFound)
}
