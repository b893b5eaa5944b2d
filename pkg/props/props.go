// Package props turns tabulated air property data into continuous
// enthalpy and entropy functions of temperature. The cycle solvers depend
// on both functions being monotonically increasing, so interpolation uses
// the Fritsch-Butland monotone cubic method rather than a free spline,
// which can overshoot between nodes.
package props

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"github.com/thermalworks/cyclesim/pkg/airdata"
)

// TableProvider supplies enthalpy and entropy as smooth functions of
// temperature, built once from an air property table. It is immutable
// after construction and safe for concurrent use.
type TableProvider struct {
	enthalpy interp.FritschButland
	entropy  interp.FritschButland
	tmin     float64
	tmax     float64

	// Boundary values and slopes for linear extension outside the
	// tabulated range.
	hLo, hHi   float64
	sLo, sHi   float64
	dhLo, dhHi float64
	dsLo, dsHi float64
}

// NewTableProvider fits monotone cubic interpolants to the table columns.
func NewTableProvider(table *airdata.Table) (*TableProvider, error) {
	if table.Len() < 2 {
		return nil, fmt.Errorf("property table needs at least 2 rows, got %d", table.Len())
	}

	p := &TableProvider{
		tmin: table.Temp[0],
		tmax: table.Temp[table.Len()-1],
	}
	if err := p.enthalpy.Fit(table.Temp, table.Enthalpy); err != nil {
		return nil, fmt.Errorf("fitting enthalpy interpolant: %w", err)
	}
	if err := p.entropy.Fit(table.Temp, table.Entropy); err != nil {
		return nil, fmt.Errorf("fitting entropy interpolant: %w", err)
	}

	p.hLo = p.enthalpy.Predict(p.tmin)
	p.hHi = p.enthalpy.Predict(p.tmax)
	p.sLo = p.entropy.Predict(p.tmin)
	p.sHi = p.entropy.Predict(p.tmax)
	p.dhLo = p.enthalpy.PredictDerivative(p.tmin)
	p.dhHi = p.enthalpy.PredictDerivative(p.tmax)
	p.dsLo = p.entropy.PredictDerivative(p.tmin)
	p.dsHi = p.entropy.PredictDerivative(p.tmax)

	return p, nil
}

// Enthalpy returns h(T) in kJ/kg. Outside the tabulated range the value is
// extended linearly with the boundary slope; callers can detect this with
// InDomain.
func (p *TableProvider) Enthalpy(t float64) float64 {
	switch {
	case t < p.tmin:
		return p.hLo + p.dhLo*(t-p.tmin)
	case t > p.tmax:
		return p.hHi + p.dhHi*(t-p.tmax)
	default:
		return p.enthalpy.Predict(t)
	}
}

// Entropy returns the standard-state entropy s°(T) in kJ/kg·K, linearly
// extended outside the tabulated range.
func (p *TableProvider) Entropy(t float64) float64 {
	switch {
	case t < p.tmin:
		return p.sLo + p.dsLo*(t-p.tmin)
	case t > p.tmax:
		return p.sHi + p.dsHi*(t-p.tmax)
	default:
		return p.entropy.Predict(t)
	}
}

// Domain returns the tabulated temperature range [tmin, tmax] in kelvin.
func (p *TableProvider) Domain() (tmin, tmax float64) {
	return p.tmin, p.tmax
}

// InDomain reports whether t lies within the tabulated range. Values
// outside it are served by extrapolation and carry lower confidence.
func (p *TableProvider) InDomain(t float64) bool {
	return t >= p.tmin && t <= p.tmax
}
