package automotive

import (
	"errors"
	"math"
	"testing"

	"github.com/msto63/rechenwerk/pkg/formula"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPowerConversion(t *testing.T) {
	got, err := PowerConversion(ConversionInput{FromUnit: "kW", Value: 100})
	if err != nil {
		t.Fatalf("PowerConversion() error = %v", err)
	}
	want := PowerResult{W: 100000, KW: 100, HP: 134.1022, PS: 135.9622, BTUh: 341214.1633}
	if got != want {
		t.Errorf("PowerConversion(100 kW) = %+v, want %+v", got, want)
	}
}

func TestPowerConversionRoundTrip(t *testing.T) {
	for _, unit := range PowerUnits() {
		t.Run(unit, func(t *testing.T) {
			got, err := PowerConversion(ConversionInput{FromUnit: unit, Value: 250})
			if err != nil {
				t.Fatalf("PowerConversion(%s) error = %v", unit, err)
			}
			same, ok := got.In(unit)
			if !ok || !approx(same, 250, 1e-4) {
				t.Errorf("In(%s) = %v, want 250", unit, same)
			}

			back, err := PowerConversion(ConversionInput{FromUnit: "W", Value: got.W})
			if err != nil {
				t.Fatalf("PowerConversion(W) error = %v", err)
			}
			if v, _ := back.In(unit); !approx(v, 250, 1e-3) {
				t.Errorf("round trip via W for %s = %v, want 250", unit, v)
			}
		})
	}
}

func TestTorqueConversion(t *testing.T) {
	got, err := TorqueConversion(ConversionInput{FromUnit: " nm ", Value: 100})
	if err != nil {
		t.Fatalf("TorqueConversion() error = %v", err)
	}
	want := TorqueResult{Nm: 100, KNm: 0.1, LbfFt: 73.7562, LbfIn: 885.0746, KgfM: 10.1972}
	if got != want {
		t.Errorf("TorqueConversion(100 Nm) = %+v, want %+v", got, want)
	}
}

func TestTorqueConversionRoundTrip(t *testing.T) {
	for _, unit := range TorqueUnits() {
		got, err := TorqueConversion(ConversionInput{FromUnit: unit, Value: 42})
		if err != nil {
			t.Fatalf("TorqueConversion(%s) error = %v", unit, err)
		}
		back, err := TorqueConversion(ConversionInput{FromUnit: "Nm", Value: got.Nm})
		if err != nil {
			t.Fatalf("TorqueConversion(Nm) error = %v", err)
		}
		if v, ok := back.In(unit); !ok || !approx(v, 42, 1e-3) {
			t.Errorf("round trip for %s = %v, want 42", unit, v)
		}
	}
}

func TestConversionFailures(t *testing.T) {
	if _, err := PowerConversion(ConversionInput{FromUnit: "furlong", Value: 1}); !errors.Is(err, formula.ErrUnknownUnit) {
		t.Errorf("PowerConversion(furlong) error = %v, want ErrUnknownUnit", err)
	}
	if _, err := TorqueConversion(ConversionInput{FromUnit: "", Value: 1}); !errors.Is(err, formula.ErrUnknownUnit) {
		t.Errorf("TorqueConversion(empty unit) error = %v, want ErrUnknownUnit", err)
	}
	if _, err := PowerConversion(ConversionInput{FromUnit: "W", Value: math.NaN()}); !errors.Is(err, formula.ErrNotComputable) {
		t.Errorf("PowerConversion(NaN) error = %v, want ErrNotComputable", err)
	}
}

func TestFuelEconomy(t *testing.T) {
	got, err := FuelEconomy(FuelEconomyInput{DistanceKm: 500, FuelLiters: 40})
	if err != nil {
		t.Fatalf("FuelEconomy() error = %v", err)
	}
	want := FuelEconomyResult{LitersPer100Km: 8, KmPerLiter: 12.5, MpgUS: 29.4, MpgUK: 35.31}
	if got != want {
		t.Errorf("FuelEconomy() = %+v, want %+v", got, want)
	}

	for _, in := range []FuelEconomyInput{{DistanceKm: 0, FuelLiters: 1}, {DistanceKm: 1, FuelLiters: -1}} {
		if _, err := FuelEconomy(in); !errors.Is(err, formula.ErrNotComputable) {
			t.Errorf("FuelEconomy(%+v) error = %v, want ErrNotComputable", in, err)
		}
	}
}

func TestVehicleSpeed(t *testing.T) {
	got, err := VehicleSpeed(VehicleSpeedInput{EngineRpm: 3000, GearRatio: 1, FinalDrive: 3.5, TireDiameterMm: 650})
	if err != nil {
		t.Fatalf("VehicleSpeed() error = %v", err)
	}
	want := VehicleSpeedResult{WheelRpm: 857.1, SpeedKmh: 105.02, SpeedMph: 65.26}
	if got != want {
		t.Errorf("VehicleSpeed() = %+v, want %+v", got, want)
	}

	if _, err := VehicleSpeed(VehicleSpeedInput{EngineRpm: 3000, GearRatio: 0, FinalDrive: 3.5, TireDiameterMm: 650}); !errors.Is(err, formula.ErrNotComputable) {
		t.Errorf("VehicleSpeed(gear 0) error = %v, want ErrNotComputable", err)
	}
}
