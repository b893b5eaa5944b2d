package cycle

// Isentropic efficiency relates the ideal (constant-entropy) enthalpy
// change across a component to the actual one. A compressor needs more
// work than the ideal machine; a turbine delivers less.

// CompressorExitEnthalpy returns the actual exit enthalpy of a compressor
// with isentropic exit enthalpy hOutIdeal and isentropic efficiency eta.
// eta = 1 reduces to the ideal case exactly.
func CompressorExitEnthalpy(hIn, hOutIdeal, eta float64) float64 {
	return hIn + (hOutIdeal-hIn)/eta
}

// TurbineExitEnthalpy returns the actual exit enthalpy of a turbine with
// isentropic exit enthalpy hOutIdeal and isentropic efficiency eta.
func TurbineExitEnthalpy(hIn, hOutIdeal, eta float64) float64 {
	return hIn - eta*(hIn-hOutIdeal)
}
