package formula

import (
	"errors"
	"reflect"
	"testing"

	"github.com/msto63/rechenwerk/foundation/core/validation"
)

type shapeInput interface{ shapeInput() }

type circle struct {
	Radius float64 `json:"radius" yaml:"radius"`
}

type rect struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

func (circle) shapeInput() {}
func (rect) shapeInput()   {}

var shapeUnion = NewUnion("kind", map[string]interface{}{
	"circle": circle{},
	"rect":   rect{},
})

func area(in shapeInput) (float64, error) {
	switch v := in.(type) {
	case circle:
		return 3 * v.Radius * v.Radius, nil
	case rect:
		return v.Width * v.Height, nil
	default:
		return 0, UnknownVariant("test.area", "kind", in)
	}
}

func decodeShape(raw interface{}) (shapeInput, error) {
	return DecodeUnion[shapeInput]("test.area", shapeUnion, raw)
}

func TestUnionVariantNames(t *testing.T) {
	if got, want := shapeUnion.VariantNames(), []string{"circle", "rect"}; !reflect.DeepEqual(got, want) {
		t.Errorf("VariantNames() = %v, want %v", got, want)
	}
}

func TestUnionValidate(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		code  string
		field string
	}{
		{"circle", map[string]interface{}{"kind": "circle", "radius": 2}, "", ""},
		{"rect", map[string]interface{}{"kind": "rect", "width": 2, "height": 3.5}, "", ""},
		{"yaml map", map[interface{}]interface{}{"kind": "circle", "radius": 1}, "", ""},
		{"other variant field ignored", map[string]interface{}{"kind": "circle", "radius": 2, "width": 1}, "", ""},
		{"nil", nil, validation.CodeType, ""},
		{"not a record", "circle", validation.CodeType, ""},
		{"missing discriminant", map[string]interface{}{"radius": 2}, validation.CodeRequired, "kind"},
		{"non-string discriminant", map[string]interface{}{"kind": 1, "radius": 2}, validation.CodeType, "kind"},
		{"unknown variant", map[string]interface{}{"kind": "hexagon"}, validation.CodeEnum, "kind"},
		{"missing field", map[string]interface{}{"kind": "rect", "width": 2}, validation.CodeRequired, "height"},
		{"wrong kind", map[string]interface{}{"kind": "circle", "radius": "2"}, validation.CodeType, "radius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shapeUnion.Validate(tt.input)
			if shapeUnion.Check(tt.input) != result.Valid {
				t.Errorf("Check() disagrees with Validate()")
			}
			if tt.code == "" {
				if !result.Valid {
					t.Errorf("Validate() = %v, want valid", result)
				}
				return
			}
			first := result.FirstError()
			if result.Valid || first == nil {
				t.Fatalf("Validate() valid, want %s", tt.code)
			}
			if first.Code != tt.code || first.Field != tt.field {
				t.Errorf("first error = %s/%q, want %s/%q", first.Code, first.Field, tt.code, tt.field)
			}
		})
	}
}

func TestDecodeUnion(t *testing.T) {
	in, err := decodeShape(map[string]interface{}{"kind": "rect", "width": 2, "height": 3, "radius": 9})
	if err != nil {
		t.Fatalf("decodeShape() error = %v", err)
	}
	if want := (rect{Width: 2, Height: 3}); in != want {
		t.Errorf("decodeShape() = %#v, want %#v", in, want)
	}

	if _, err := decodeShape(map[string]interface{}{"kind": "hexagon"}); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("decodeShape(hexagon) error = %v, want ErrUnknownVariant", err)
	}
	if _, err := decodeShape(map[string]interface{}{"kind": "circle"}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("decodeShape(no radius) error = %v, want ErrInvalidShape", err)
	}
}

func TestTaggedEvaluate(t *testing.T) {
	f := Tagged("test", "area", "Area of a shape", shapeUnion, decodeShape, area)

	out, err := f.Evaluate(map[string]interface{}{"kind": "rect", "width": 2, "height": 3})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if out.(float64) != 6 {
		t.Errorf("Evaluate() = %v, want 6", out)
	}

	if _, err := f.Evaluate(nil); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Evaluate(nil) error = %v, want ErrInvalidShape", err)
	}

	tmpl := f.Template()
	if tmpl["kind"] != "circle" {
		t.Errorf("Template() kind = %v, want circle", tmpl["kind"])
	}
	if _, ok := tmpl["radius"]; !ok {
		t.Errorf("Template() missing radius")
	}
}

func TestUnknownVariantInFunction(t *testing.T) {
	if _, err := area(nil); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("area(nil) error = %v, want ErrUnknownVariant", err)
	}
}
