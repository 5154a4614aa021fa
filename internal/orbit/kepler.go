package orbit

import (
	"math"

	"github.com/litescript/ls-orbitor/internal/errors"
)

// Solver defaults.
const (
	DefaultTolerance     = 1e-9
	DefaultMaxIterations = 30
)

// SolveKepler solves M = E - e·sin E for the eccentric anomaly E by
// Newton-Raphson, starting from E = M. It stops once a step is smaller than
// tolerance and fails with CONVERGENCE_FAILURE if that does not happen
// within maxIterations. e = 0 needs no special case: the first step is 0.
func SolveKepler(meanAnomaly, eccentricity, tolerance float64, maxIterations int) (float64, error) {
	if !finite(meanAnomaly) || !finite(eccentricity) || eccentricity < 0 || eccentricity >= 1 {
		return 0, errors.NewInvalidElements(meanAnomaly, eccentricity)
	}

	e := meanAnomaly
	var delta float64
	for i := 0; i < maxIterations; i++ {
		delta = (e - eccentricity*math.Sin(e) - meanAnomaly) / (1 - eccentricity*math.Cos(e))
		e -= delta
		if math.Abs(delta) < tolerance {
			return e, nil
		}
	}
	return 0, errors.NewConvergenceFailure(meanAnomaly, eccentricity, maxIterations, delta)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
