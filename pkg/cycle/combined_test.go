package cycle

import (
	"errors"
	"math"
	"testing"
)

func baseBottoming() BottomingParams {
	return BottomingParams{
		StackTemp:        460.0,
		ExhaustThreshold: 673.15,
		SteamHeatInput:   2917.0,
		SteamEfficiency:  36.53,
	}
}

func TestValidateBottomingParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BottomingParams)
	}{
		{"zero stack temperature", func(b *BottomingParams) { b.StackTemp = 0 }},
		{"negative threshold", func(b *BottomingParams) { b.ExhaustThreshold = -1 }},
		{"zero steam heat input", func(b *BottomingParams) { b.SteamHeatInput = 0 }},
		{"efficiency above 100 percent", func(b *BottomingParams) { b.SteamEfficiency = 120 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := baseBottoming()
			tt.mutate(&b)
			_, err := EvaluateCombined(testAir{}, baseParams(), b)
			var paramErr *ParameterError
			if !errors.As(err, &paramErr) {
				t.Fatalf("expected *ParameterError, got %v", err)
			}
		})
	}
}

func TestEvaluateCombinedCoupling(t *testing.T) {
	// At r=10 the exhaust leaves well above the 673.15 K threshold, so
	// the bottoming cycle must engage and improve on Brayton alone.
	air := testAir{}
	res, err := EvaluateCombined(air, baseParams(), baseBottoming())
	if err != nil {
		t.Fatalf("EvaluateCombined failed: %v", err)
	}

	if !res.BottomingActive {
		t.Fatalf("bottoming inactive at T4=%.2f K, threshold %.2f K", res.TurbineExitTemp, baseBottoming().ExhaustThreshold)
	}
	if res.TurbineExitTemp < baseBottoming().ExhaustThreshold {
		t.Errorf("active bottoming with T4=%.2f below threshold", res.TurbineExitTemp)
	}
	if res.CombinedEfficiency <= res.Brayton.ThermalEfficiency {
		t.Errorf("combined efficiency %v not above Brayton %v", res.CombinedEfficiency, res.Brayton.ThermalEfficiency)
	}

	// T4 must invert h4 back through the enthalpy function.
	if got, want := air.Enthalpy(res.TurbineExitTemp), res.Brayton.TurbineExitEnthalpy; math.Abs(got-want) > 1e-3 {
		t.Errorf("h(T4)=%v does not match h4=%v", got, want)
	}

	// Steam bookkeeping.
	b := baseBottoming()
	wantQ := res.Brayton.TurbineExitEnthalpy - air.Enthalpy(b.StackTemp)
	if got := res.SteamMassFraction * b.SteamHeatInput; math.Abs(got-wantQ) > 1e-9 {
		t.Errorf("steam mass fraction inconsistent: recovered heat %v, want %v", got, wantQ)
	}
	wantW := res.SteamMassFraction * b.SteamHeatInput * b.SteamEfficiency / 100
	if math.Abs(res.BottomingWork-wantW) > 1e-9 {
		t.Errorf("bottoming work %v, want %v", res.BottomingWork, wantW)
	}
	wantEff := (res.Brayton.NetWork + res.BottomingWork) / res.Brayton.HeatInput
	if math.Abs(res.CombinedEfficiency-wantEff) > 1e-12 {
		t.Errorf("combined efficiency %v, want %v", res.CombinedEfficiency, wantEff)
	}
}

func TestEvaluateCombinedThresholdStep(t *testing.T) {
	// The coupling decision is a hard step on T4, not a blend: moving
	// the threshold across the actual exit temperature must flip the
	// outcome between "Brayton only" and "Brayton plus steam".
	air := testAir{}
	probe, err := EvaluateCombined(air, baseParams(), baseBottoming())
	if err != nil {
		t.Fatalf("probe evaluation failed: %v", err)
	}
	t4 := probe.TurbineExitTemp

	below := baseBottoming()
	below.ExhaustThreshold = t4 - 0.1
	resBelow, err := EvaluateCombined(air, baseParams(), below)
	if err != nil {
		t.Fatalf("EvaluateCombined failed: %v", err)
	}
	if !resBelow.BottomingActive {
		t.Error("threshold below T4: bottoming should be active")
	}
	if resBelow.CombinedEfficiency < resBelow.Brayton.ThermalEfficiency {
		t.Error("bottoming cycle reduced efficiency")
	}

	above := baseBottoming()
	above.ExhaustThreshold = t4 + 0.1
	resAbove, err := EvaluateCombined(air, baseParams(), above)
	if err != nil {
		t.Fatalf("EvaluateCombined failed: %v", err)
	}
	if resAbove.BottomingActive {
		t.Error("threshold above T4: bottoming should be inactive")
	}
	if resAbove.CombinedEfficiency != resAbove.Brayton.ThermalEfficiency {
		t.Errorf("inactive bottoming: combined %v must equal Brayton %v",
			resAbove.CombinedEfficiency, resAbove.Brayton.ThermalEfficiency)
	}
	if resAbove.BottomingWork != 0 || resAbove.SteamMassFraction != 0 {
		t.Error("inactive bottoming reported nonzero steam output")
	}

	// Threshold exactly at T4 counts as operable.
	at := baseBottoming()
	at.ExhaustThreshold = t4
	resAt, err := EvaluateCombined(air, baseParams(), at)
	if err != nil {
		t.Fatalf("EvaluateCombined failed: %v", err)
	}
	if !resAt.BottomingActive {
		t.Error("threshold equal to T4: bottoming should be active")
	}
}

func TestEvaluateCombinedColdExhaust(t *testing.T) {
	// A modest pressure ratio with a cold turbine inlet leaves the
	// exhaust below the threshold; combined collapses to Brayton.
	p := baseParams()
	p.TurbineInletTemp = 700
	p.PressureRatio = 8

	res, err := EvaluateCombined(testAir{}, p, baseBottoming())
	if err != nil {
		t.Fatalf("EvaluateCombined failed: %v", err)
	}
	if res.BottomingActive {
		t.Fatalf("bottoming active at T4=%.2f K, threshold %.2f K", res.TurbineExitTemp, baseBottoming().ExhaustThreshold)
	}
	if res.CombinedEfficiency != res.Brayton.ThermalEfficiency {
		t.Error("inactive bottoming must fall back to Brayton efficiency")
	}
}

func TestEvaluateCombinedInvalidBrayton(t *testing.T) {
	// Brayton-stage failures propagate unchanged.
	p := baseParams()
	p.PressureRatio = 0.5
	_, err := EvaluateCombined(testAir{}, p, baseBottoming())
	var paramErr *ParameterError
	if !errors.As(err, &paramErr) {
		t.Fatalf("expected *ParameterError, got %v", err)
	}
	if paramErr.Name != "pressure_ratio" {
		t.Errorf("rejected field %q, want pressure_ratio", paramErr.Name)
	}
}
