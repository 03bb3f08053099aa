package printer

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupFactors(t *testing.T) {
	primes := []*big.Int{
		big.NewInt(2), big.NewInt(2), big.NewInt(2),
		big.NewInt(3), big.NewInt(3),
		big.NewInt(5),
	}

	rows := groupFactors(primes)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(2), rows[0].prime.Int64())
	assert.Equal(t, 3, rows[0].exponent)
	assert.Equal(t, int64(3), rows[1].prime.Int64())
	assert.Equal(t, 2, rows[1].exponent)
	assert.Equal(t, int64(5), rows[2].prime.Int64())
	assert.Equal(t, 1, rows[2].exponent)
}

func TestGroupFactorsEmpty(t *testing.T) {
	assert.Empty(t, groupFactors(nil))
}
