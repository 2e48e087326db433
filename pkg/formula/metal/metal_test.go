package metal

import (
	"errors"
	"testing"

	"github.com/msto63/rechenwerk/pkg/formula"
)

func TestWeight(t *testing.T) {
	tests := []struct {
		name string
		in   WeightInput
		want WeightResult
	}{
		{
			name: "round steel",
			in:   Round{DiameterMm: 20, LengthMm: 1000, Material: "steel"},
			want: WeightResult{AreaMm2: 314.159, VolumeCm3: 314.159, DensityKgM3: 7850, WeightKg: 2.466},
		},
		{
			name: "square stainless",
			in:   Square{SideMm: 20, LengthMm: 2000, Material: "Stainless"},
			want: WeightResult{AreaMm2: 400, VolumeCm3: 800, DensityKgM3: 8000, WeightKg: 6.4},
		},
		{
			name: "plate aluminum",
			in:   Plate{WidthMm: 100, ThicknessMm: 10, LengthMm: 500, Material: "aluminum"},
			want: WeightResult{AreaMm2: 1000, VolumeCm3: 500, DensityKgM3: 2700, WeightKg: 1.35},
		},
		{
			name: "tube copper",
			in:   Tube{OuterDiameterMm: 50, WallMm: 5, LengthMm: 1000, Material: "copper"},
			want: WeightResult{AreaMm2: 706.858, VolumeCm3: 706.858, DensityKgM3: 8960, WeightKg: 6.333},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Weight(tt.in)
			if err != nil {
				t.Fatalf("Weight() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Weight() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWeightFailures(t *testing.T) {
	notComputable := []WeightInput{
		Round{DiameterMm: 0, LengthMm: 100, Material: "steel"},
		Square{SideMm: 10, LengthMm: 0, Material: "steel"},
		Tube{OuterDiameterMm: 20, WallMm: 10, LengthMm: 100, Material: "steel"},
		Tube{OuterDiameterMm: 20, WallMm: 12, LengthMm: 100, Material: "steel"},
	}
	for _, in := range notComputable {
		if _, err := Weight(in); !errors.Is(err, formula.ErrNotComputable) {
			t.Errorf("Weight(%+v) error = %v, want ErrNotComputable", in, err)
		}
	}

	if _, err := Weight(Round{DiameterMm: 10, LengthMm: 100, Material: "unobtainium"}); !errors.Is(err, formula.ErrUnknownUnit) {
		t.Errorf("Weight(unknown material) error = %v, want ErrUnknownUnit", err)
	}
}

func TestWeightEvaluate(t *testing.T) {
	f := Formulas()[0]
	out, err := f.Evaluate(map[string]interface{}{"shape": "round", "diameterMm": 20, "lengthMm": 1000, "material": "steel"})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got := out.(WeightResult).WeightKg; got != 2.466 {
		t.Errorf("WeightKg = %v, want 2.466", got)
	}

	_, err = f.Evaluate(map[string]interface{}{"shape": "hexagon", "sideMm": 10, "lengthMm": 1000, "material": "steel"})
	if !errors.Is(err, formula.ErrUnknownVariant) {
		t.Errorf("Evaluate(hexagon) error = %v, want ErrUnknownVariant", err)
	}
}

func TestMaterials(t *testing.T) {
	want := []string{"aluminum", "brass", "copper", "stainless", "steel", "titanium"}
	got := Materials()
	if len(got) != len(want) {
		t.Fatalf("Materials() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Materials()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestThermalExpansion(t *testing.T) {
	got, err := ThermalExpansion(ThermalExpansionInput{LengthMm: 1000, CoefficientPerC: 12e-6, DeltaTempC: 50})
	if err != nil {
		t.Fatalf("ThermalExpansion() error = %v", err)
	}
	if want := (ThermalExpansionResult{DeltaLengthMm: 0.6, FinalLengthMm: 1000.6}); got != want {
		t.Errorf("ThermalExpansion() = %+v, want %+v", got, want)
	}

	cooled, err := ThermalExpansion(ThermalExpansionInput{LengthMm: 1000, CoefficientPerC: 12e-6, DeltaTempC: -50})
	if err != nil || cooled.FinalLengthMm != 999.4 {
		t.Errorf("ThermalExpansion(cooling) = %+v, %v", cooled, err)
	}

	if _, err := ThermalExpansion(ThermalExpansionInput{LengthMm: 0}); !errors.Is(err, formula.ErrNotComputable) {
		t.Errorf("ThermalExpansion(L=0) error = %v, want ErrNotComputable", err)
	}
}

func TestBendAllowance(t *testing.T) {
	half := 0.5
	tests := []struct {
		name string
		in   BendAllowanceInput
		want BendAllowanceResult
	}{
		{
			name: "default k-factor",
			in:   BendAllowanceInput{AngleDegrees: 90, InsideRadiusMm: 2, ThicknessMm: 1},
			want: BendAllowanceResult{BendAllowanceMm: 3.66, OutsideSetbackMm: 3, BendDeductionMm: 2.34},
		},
		{
			name: "explicit k-factor",
			in:   BendAllowanceInput{AngleDegrees: 45, InsideRadiusMm: 1, ThicknessMm: 2, KFactor: &half},
			want: BendAllowanceResult{BendAllowanceMm: 1.571, OutsideSetbackMm: 1.243, BendDeductionMm: 0.914},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BendAllowance(tt.in)
			if err != nil {
				t.Fatalf("BendAllowance() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BendAllowance() = %+v, want %+v", got, tt.want)
			}
		})
	}

	zero, tooLarge := 0.0, 1.2
	failures := []BendAllowanceInput{
		{AngleDegrees: 0, InsideRadiusMm: 1, ThicknessMm: 1},
		{AngleDegrees: 180, InsideRadiusMm: 1, ThicknessMm: 1},
		{AngleDegrees: 90, InsideRadiusMm: -1, ThicknessMm: 1},
		{AngleDegrees: 90, InsideRadiusMm: 1, ThicknessMm: 0},
		{AngleDegrees: 90, InsideRadiusMm: 1, ThicknessMm: 1, KFactor: &zero},
		{AngleDegrees: 90, InsideRadiusMm: 1, ThicknessMm: 1, KFactor: &tooLarge},
	}
	for _, in := range failures {
		if _, err := BendAllowance(in); !errors.Is(err, formula.ErrNotComputable) {
			t.Errorf("BendAllowance(%+v) error = %v, want ErrNotComputable", in, err)
		}
	}
}
