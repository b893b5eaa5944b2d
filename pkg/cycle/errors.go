package cycle

import "fmt"

// ConvergenceError is returned when a root solve does not converge within
// its iteration budget. It carries the target value and the last
// temperature attempted so the failure can be diagnosed without rerunning.
type ConvergenceError struct {
	Target     float64
	LastTemp   float64
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("root solve did not converge after %d iterations (target %.6f, last T=%.3f K)",
		e.Iterations, e.Target, e.LastTemp)
}

// ParameterError reports a cycle parameter rejected before any solve was
// attempted.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
}

// DegenerateCycleError reports an evaluation whose resolved states violate
// the cycle invariants (non-positive heat input, non-finite work). The
// single evaluation is unusable but sweeps may continue past it.
type DegenerateCycleError struct {
	HeatInput float64
	NetWork   float64
}

func (e *DegenerateCycleError) Error() string {
	return fmt.Sprintf("degenerate cycle: heat input %.3f kJ/kg, net work %.3f kJ/kg", e.HeatInput, e.NetWork)
}
