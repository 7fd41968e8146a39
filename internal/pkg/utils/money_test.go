package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(150000), ToMinorUnits(1500.00))
	assert.Equal(t, int64(129999), ToMinorUnits(1299.99))
	assert.Equal(t, int64(1), ToMinorUnits(0.01))
	assert.Equal(t, int64(0), ToMinorUnits(0))

	// Float arithmetic like 0.1+0.2 must not leak into the charged amount.
	assert.Equal(t, int64(30), ToMinorUnits(0.1+0.2))
}

func TestFromMinorUnits(t *testing.T) {
	assert.Equal(t, 1500.00, FromMinorUnits(150000))
	assert.Equal(t, 1299.99, FromMinorUnits(129999))
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	for _, amount := range []float64{1500.00, 0.01, 999.95, 1234.56} {
		assert.Equal(t, amount, FromMinorUnits(ToMinorUnits(amount)))
	}
}
