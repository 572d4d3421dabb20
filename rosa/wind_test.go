package rosa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DegreeFromVector(t *testing.T) {
	// 南西の風
	assert.InDelta(t, 180.0+45.0, DegreeFromVector(1.0, 1.0), 1e-9)

	// 北の風は360
	assert.InDelta(t, 360.0, DegreeFromVector(0, -1.0), 1e-9)

	// 東の風
	assert.InDelta(t, 90.0, DegreeFromVector(-1.0, 0), 1e-9)

	// 無風は静穏
	assert.Equal(t, 0.0, DegreeFromVector(0, 0))

	assert.True(t, math.IsNaN(DegreeFromVector(math.NaN(), 1.0)))
}

func Test_WindSpeed(t *testing.T) {
	assert.InDelta(t, 1.4142136, WindSpeed(1.0, 1.0), 0.0001)
	assert.Equal(t, 5.0, WindSpeed(3, -4))
}
