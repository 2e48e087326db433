package environmental

import (
	"errors"
	"reflect"
	"testing"

	"github.com/msto63/rechenwerk/pkg/formula"
)

func TestCarbonFootprint(t *testing.T) {
	got, err := CarbonFootprint(CarbonFootprintInput{ElectricityKWh: 1000, NaturalGasM3: 100, DieselLiters: 50})
	if err != nil {
		t.Fatalf("CarbonFootprint() error = %v", err)
	}
	want := CarbonFootprintResult{Scope1Kg: 336, Scope2Kg: 400, TotalKg: 736, TotalTonnes: 0.736}
	if got != want {
		t.Errorf("CarbonFootprint() = %+v, want %+v", got, want)
	}

	green := 0.0
	custom, err := CarbonFootprint(CarbonFootprintInput{ElectricityKWh: 1000, ElectricityFactor: &green})
	if err != nil || custom.TotalKg != 0 {
		t.Errorf("CarbonFootprint(zero factor) = %+v, %v, want total 0", custom, err)
	}

	if _, err := CarbonFootprint(CarbonFootprintInput{DieselLiters: -1}); !errors.Is(err, formula.ErrNotComputable) {
		t.Errorf("CarbonFootprint(negative) error = %v, want ErrNotComputable", err)
	}
}

func TestLifecycleCost(t *testing.T) {
	in := LifecycleCostInput{
		Stages: []Stage{
			{Name: "purchase", Cost: 10000, Year: 0, EmissionsKg: 1200},
			{Name: "overhaul", Cost: 500, Year: 5, EmissionsKg: 80},
			{Name: "disposal", Cost: 2000, Year: 10, EmissionsKg: 300},
		},
		DiscountRate: 0.05,
		HorizonYears: 10,
	}
	got, err := LifecycleCost(in)
	if err != nil {
		t.Fatalf("LifecycleCost() error = %v", err)
	}
	want := LifecycleCostResult{
		Stages: []StageValue{
			{Name: "purchase", Year: 0, PresentValue: 10000},
			{Name: "overhaul", Year: 5, PresentValue: 391.76},
			{Name: "disposal", Year: 10, PresentValue: 1227.83},
		},
		NominalCost:      12500,
		PresentValue:     11619.59,
		AnnualizedCost:   1504.79,
		AnnuityFactor:    7.721735,
		TotalEmissionsKg: 1580,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LifecycleCost() = %+v, want %+v", got, want)
	}
}

func TestLifecycleCostZeroRate(t *testing.T) {
	got, err := LifecycleCost(LifecycleCostInput{
		Stages:       []Stage{{Name: "buy", Cost: 1000}, {Name: "run", Cost: 1000, Year: 4}},
		HorizonYears: 4,
	})
	if err != nil {
		t.Fatalf("LifecycleCost() error = %v", err)
	}
	if got.AnnuityFactor != 4 || got.AnnualizedCost != 500 || got.PresentValue != 2000 {
		t.Errorf("LifecycleCost(zero rate) = %+v", got)
	}
}

func TestLifecycleCostFailures(t *testing.T) {
	stages := []Stage{{Name: "buy", Cost: 1}}
	tests := []LifecycleCostInput{
		{HorizonYears: 1},
		{Stages: stages, HorizonYears: 0},
		{Stages: stages, HorizonYears: 1, DiscountRate: -1},
		{Stages: []Stage{{Name: "late", Cost: 1, Year: 3}}, HorizonYears: 2},
		{Stages: []Stage{{Name: "early", Cost: 1, Year: -1}}, HorizonYears: 2},
		{Stages: []Stage{{Name: "far", Cost: 1, Year: 200}}, HorizonYears: 200, DiscountRate: -0.99},
		{Stages: []Stage{{Name: "a", Cost: 1e308}, {Name: "b", Cost: 1e308}}, HorizonYears: 1},
	}
	for _, in := range tests {
		if _, err := LifecycleCost(in); !errors.Is(err, formula.ErrNotComputable) {
			t.Errorf("LifecycleCost(%+v) error = %v, want ErrNotComputable", in, err)
		}
	}
}

func TestEmissionIntensity(t *testing.T) {
	got, err := EmissionIntensity(EmissionIntensityInput{EmissionsKg: 500, UnitsProduced: 200})
	if err != nil {
		t.Fatalf("EmissionIntensity() error = %v", err)
	}
	if got.KgPerUnit != 2.5 || got.KgPerRevenue != nil {
		t.Errorf("EmissionIntensity() = %+v, want 2.5 per unit and no revenue ratio", got)
	}

	revenue := 8000.0
	got, err = EmissionIntensity(EmissionIntensityInput{EmissionsKg: 500, UnitsProduced: 200, Revenue: &revenue})
	if err != nil {
		t.Fatalf("EmissionIntensity(revenue) error = %v", err)
	}
	if got.KgPerRevenue == nil || *got.KgPerRevenue != 0.0625 {
		t.Errorf("KgPerRevenue = %v, want 0.0625", got.KgPerRevenue)
	}

	zero := 0.0
	if _, err := EmissionIntensity(EmissionIntensityInput{EmissionsKg: 1, UnitsProduced: 1, Revenue: &zero}); !errors.Is(err, formula.ErrNotComputable) {
		t.Errorf("EmissionIntensity(revenue 0) error = %v, want ErrNotComputable", err)
	}
	if _, err := EmissionIntensity(EmissionIntensityInput{EmissionsKg: 1, UnitsProduced: 0}); !errors.Is(err, formula.ErrNotComputable) {
		t.Errorf("EmissionIntensity(units 0) error = %v, want ErrNotComputable", err)
	}
}
