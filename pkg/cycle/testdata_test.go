package cycle

import "math"

// testAir is an analytic air model with cp(T) = cpA + cpB·T, giving exact
// closed-form enthalpy and entropy. Tests against it avoid interpolation
// noise entirely.
const (
	cpA = 0.94
	cpB = 2.2e-4

	airTMin = 200.0
	airTMax = 2000.0
)

type testAir struct{}

func (testAir) Enthalpy(t float64) float64 {
	return cpA*t + 0.5*cpB*t*t
}

func (testAir) Entropy(t float64) float64 {
	return cpA*math.Log(t) + cpB*t
}

func (testAir) InDomain(t float64) bool {
	return t >= airTMin && t <= airTMax
}

// narrowAir is testAir with a domain that excludes typical turbine inlet
// temperatures, for exercising the extrapolation flag.
type narrowAir struct{ testAir }

func (narrowAir) InDomain(t float64) bool {
	return t >= 290 && t <= 700
}

func baseParams() Params {
	return Params{
		PressureRatio:    10,
		CompressorEff:    0.90,
		TurbineEff:       0.90,
		InletTemp:        298.15,
		TurbineInletTemp: 1200.0,
		GasConstant:      0.287,
	}
}
