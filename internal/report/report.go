// Package report renders cycle analysis results as fixed-width text
// tables. The core evaluators know nothing about output format; everything
// here consumes their value results.
package report

import (
	"fmt"
	"io"

	"github.com/thermalworks/cyclesim/pkg/sweep"
)

const divider = "=============================="

// EfficiencyTable writes thermal efficiency versus pressure ratio.
func EfficiencyTable(w io.Writer, points []sweep.Point) {
	fmt.Fprintf(w, "--- Thermal Efficiency (Brayton) ---\n")
	fmt.Fprintf(w, "%22s  %24s\n", "Compression ratio (r)", "Thermal Efficiency (%)")
	for _, pt := range points {
		if pt.Err != nil {
			fmt.Fprintf(w, "%22.2f  %24s\n", pt.Ratio, "failed: "+pt.Err.Error())
			continue
		}
		fmt.Fprintf(w, "%22.2f  %24.2f%s\n", pt.Ratio, pt.Result.ThermalEfficiency*100, flag(pt.Result.Extrapolated))
	}
	fmt.Fprintf(w, "\n%s\n\n", divider)
}

// NetWorkTable writes net specific work versus pressure ratio, followed by
// the location of the sampled maximum.
func NetWorkTable(w io.Writer, points []sweep.Point) {
	fmt.Fprintf(w, "--- Net Work Analysis ---\n")
	fmt.Fprintf(w, "%22s  %18s\n", "Compression Ratio (r)", "Net Work (kJ/kg)")
	for _, pt := range points {
		if pt.Err != nil {
			fmt.Fprintf(w, "%22.2f  %18s\n", pt.Ratio, "failed: "+pt.Err.Error())
			continue
		}
		fmt.Fprintf(w, "%22.2f  %18.2f%s\n", pt.Ratio, pt.Result.NetWork, flag(pt.Result.Extrapolated))
	}
	if best, ok := sweep.MaxNetWork(points); ok {
		fmt.Fprintf(w, "\n Maximum Net Work: %.2f kJ/kg\n", best.Result.NetWork)
		fmt.Fprintf(w, " Optimal Compression Ratio: r = %.2f\n", best.Ratio)
	}
	fmt.Fprintf(w, "\n%s\n\n", divider)
}

// SensitivityTable writes thermal efficiency for each compressor/turbine
// efficiency pair of a sensitivity run.
func SensitivityTable(w io.Writer, ratio float64, points []sweep.SensitivityPoint) {
	fmt.Fprintf(w, "--- Sensitivity Analysis (r = %.0f) ---\n", ratio)
	fmt.Fprintf(w, "%10s  %24s\n", "n_c = n_t", "Thermal Efficiency (%)")
	for _, pt := range points {
		if pt.Err != nil {
			fmt.Fprintf(w, "%10.2f  %24s\n", pt.Efficiency, "failed: "+pt.Err.Error())
			continue
		}
		fmt.Fprintf(w, "%10.2f  %24.2f\n", pt.Efficiency, pt.Result.ThermalEfficiency*100)
	}
	fmt.Fprintf(w, "\n%s\n\n", divider)
}

// CombinedTable writes Brayton and combined efficiency with the actual
// turbine exit temperature for each pressure ratio.
func CombinedTable(w io.Writer, points []sweep.CombinedPoint) {
	fmt.Fprintf(w, "--- Combined Cycle ---\n")
	fmt.Fprintf(w, "%22s  %23s  %24s  %17s\n",
		"Compression Ratio (r)", "Brayton Efficiency (%)", "Combined Efficiency (%)", "T4 Exit Temp (K)")
	for _, pt := range points {
		if pt.Err != nil {
			fmt.Fprintf(w, "%22.2f  failed: %s\n", pt.Ratio, pt.Err.Error())
			continue
		}
		fmt.Fprintf(w, "%22.2f  %23.2f  %24.2f  %17.2f%s\n",
			pt.Ratio,
			pt.Result.Brayton.ThermalEfficiency*100,
			pt.Result.CombinedEfficiency*100,
			pt.Result.TurbineExitTemp,
			flag(pt.Result.Extrapolated))
	}
	fmt.Fprintf(w, "\n%s\n\n", divider)
}

// CombinedSpot writes the single-point combined-cycle evaluation.
func CombinedSpot(w io.Writer, pt sweep.CombinedPoint) {
	if pt.Err != nil {
		fmt.Fprintf(w, "Combined cycle at r=%.2f failed: %s\n", pt.Ratio, pt.Err.Error())
		return
	}
	fmt.Fprintf(w, "Combined Cycle at r=%.2f\n", pt.Ratio)
	fmt.Fprintf(w, "Brayton Efficiency: %.2f%%\n", pt.Result.Brayton.ThermalEfficiency*100)
	fmt.Fprintf(w, "Combined Efficiency: %.2f%%\n", pt.Result.CombinedEfficiency*100)
	fmt.Fprintf(w, "T4 Exit Temperature: %.2f K\n", pt.Result.TurbineExitTemp)
	if !pt.Result.BottomingActive {
		fmt.Fprintf(w, "Bottoming cycle inactive: exhaust below threshold\n")
	}
}

// flag marks rows whose states left the tabulated property domain.
func flag(extrapolated bool) string {
	if extrapolated {
		return " *"
	}
	return ""
}
