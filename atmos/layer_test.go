package atmos

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LayerInterp(t *testing.T) {
	// At the endpoints the interpolation returns the endpoint values.
	assert.InDelta(t, 280.0, LayerInterp(100000.0, 80000.0, 100000.0, 280.0, 270.0), 1e-12)
	assert.InDelta(t, 270.0, LayerInterp(100000.0, 80000.0, 80000.0, 280.0, 270.0), 1e-12)

	// The log-pressure midpoint is the geometric mean of the bounding
	// pressures; there the interpolation is the arithmetic mean.
	pmid := math.Sqrt(100000.0 * 80000.0)
	assert.InDelta(t, 275.0, LayerInterp(100000.0, 80000.0, pmid, 280.0, 270.0), 1e-9)
}

func Test_LayerAverage(t *testing.T) {
	// Bottom-up profile (decreasing pressure).
	pres := []float64{100000, 90000, 80000}
	v := []float64{2, 4, 6}

	avg, err := LayerAverage(pres, v)
	assert.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 1e-12)

	// Input slices are left untouched.
	assert.Equal(t, []float64{100000, 90000, 80000}, pres)
	assert.Equal(t, []float64{2, 4, 6}, v)

	// A constant profile averages to the constant regardless of ordering.
	avg, err = LayerAverage([]float64{80000, 90000, 100000}, []float64{3, 3, 3})
	assert.NoError(t, err)
	assert.InDelta(t, 3.0, avg, 1e-12)
}

func Test_LayerAverage_Invalid(t *testing.T) {
	_, err := LayerAverage([]float64{100000, 90000}, []float64{1})
	assert.Error(t, err)

	var derr *DomainError
	assert.True(t, errors.As(err, &derr))

	_, err = LayerAverage([]float64{100000}, []float64{1})
	assert.Error(t, err)

	// Non-monotonic levels.
	_, err = LayerAverage([]float64{100000, 90000, 95000}, []float64{1, 2, 3})
	assert.Error(t, err)
}
