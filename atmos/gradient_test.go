package atmos

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The two stability branches must disagree for identical tstar and z.
func Test_DTDz_Branches(t *testing.T) {
	unstable := DTDz(10.0, -50.0, 0.5)
	stable := DTDz(10.0, 50.0, 0.5)

	assert.NotEqual(t, unstable, stable)

	// 0.0925*(1+1.8)^(-1/2) for the buoyant branch
	assert.InDelta(t, 0.055279, unstable, 1e-5)
	// 0.0925 + 0.94 for the stable branch
	assert.InDelta(t, 1.0325, stable, 1e-9)
}

// Stable branch against its closed-form integral
// 0.74*tstar/Karman*ln(z2/z1) + 4.7*(z2^2-z1^2)/(2*l).
func Test_TempAtHeight_Stable(t *testing.T) {
	temp, err := TempAtHeight(2.0, 290.0, 50.0, 0.5, 0.3, 4.0, ProfileOptions{})
	assert.NoError(t, err)

	// 0.925*ln(2) + 0.094*6 = 1.205161
	assert.InDelta(t, 291.20516, temp, 0.005)
}

// Buoyant branch against its closed-form integral.
func Test_TempAtHeight_Unstable(t *testing.T) {
	temp, err := TempAtHeight(2.0, 290.0, -50.0, 0.5, 0.3, 4.0, ProfileOptions{})
	assert.NoError(t, err)
	assert.InDelta(t, 290.52105, temp, 0.005)
}

// Integrating downward recovers the temperature difference with the
// opposite sign.
func Test_TempAtHeight_Descending(t *testing.T) {
	up, err := TempAtHeight(2.0, 290.0, 50.0, 0.5, 0.3, 4.0, ProfileOptions{})
	assert.NoError(t, err)
	down, err := TempAtHeight(4.0, up, 50.0, 0.5, 0.3, 2.0, ProfileOptions{})
	assert.NoError(t, err)
	assert.InDelta(t, 290.0, down, 0.001)
}

// The historical guard only integrates when the start is already within
// tolerance of the target; otherwise the starting temperature comes back
// unchanged.
func Test_TempAtHeight_LegacyGuard(t *testing.T) {
	opts := ProfileOptions{LegacyGuard: true}

	temp, err := TempAtHeight(2.0, 290.0, 50.0, 0.5, 0.3, 4.0, opts)
	assert.NoError(t, err)
	assert.Equal(t, 290.0, temp)

	// Within tolerance the legacy loop takes a full step past the target.
	temp, err = TempAtHeight(4.01, 290.0, 50.0, 0.5, 0.3, 4.0, opts)
	assert.NoError(t, err)
	assert.InDelta(t, 289.93942, temp, 1e-4)
}

func Test_TempAtHeight_InvalidInputs(t *testing.T) {
	_, err := TempAtHeight(0.0, 290.0, 50.0, 0.5, 0.3, 4.0, ProfileOptions{})
	assert.Error(t, err)

	var derr *DomainError
	assert.True(t, errors.As(err, &derr))

	_, err = TempAtHeight(2.0, 290.0, 50.0, 0.5, 0.3, -4.0, ProfileOptions{})
	assert.Error(t, err)

	_, err = TempAtHeight(2.0, 290.0, 50.0, 0.5, 0.3, 4.0, ProfileOptions{StepSize: -0.1})
	assert.Error(t, err)

	_, err = TempAtHeight(2.0, 290.0, 50.0, 0.5, 0.3, 4.0, ProfileOptions{Tolerance: -0.05})
	assert.Error(t, err)
}
