package orbit

import (
	"math"
	"testing"

	"github.com/litescript/ls-orbitor/internal/errors"
)

func TestParseBody(t *testing.T) {
	tests := []struct {
		in      string
		want    Body
		wantErr bool
	}{
		{"Sun", Sun, false},
		{"moon", Moon, false},
		{"  JUPITER ", Jupiter, false},
		{"neptune", Neptune, false},
		{"pluto", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseBody(tt.in)
		if tt.wantErr {
			if !errors.Is(err, errors.ErrUnknownBody) {
				t.Errorf("ParseBody(%q) err = %v, want UNKNOWN_BODY", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBody(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBody(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseBodies(t *testing.T) {
	got, err := ParseBodies([]string{"mars", "Venus"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != Mars || got[1] != Venus {
		t.Errorf("ParseBodies = %v", got)
	}

	if _, err := ParseBodies([]string{"mars", "vulcan"}); !errors.Is(err, errors.ErrUnknownBody) {
		t.Errorf("ParseBodies with unknown name err = %v", err)
	}
}

func TestBodyStringRoundTrip(t *testing.T) {
	for _, b := range Bodies {
		got, err := ParseBody(b.String())
		if err != nil || got != b {
			t.Errorf("ParseBody(%q) = %v, %v", b.String(), got, err)
		}
	}
	if s := Body(42).String(); s != "Body(42)" {
		t.Errorf("Body(42).String() = %q", s)
	}
}

func TestBodyParent(t *testing.T) {
	if Moon.Parent() != Earth {
		t.Errorf("Moon.Parent() = %v", Moon.Parent())
	}
	for _, b := range []Body{Sun, Mercury, Earth, Neptune} {
		if b.Parent() != Sun {
			t.Errorf("%v.Parent() = %v, want Sun", b, b.Parent())
		}
	}
}

func TestElementsFor(t *testing.T) {
	sun, err := ElementsFor(Sun)
	if err != nil {
		t.Fatalf("ElementsFor(Sun): %v", err)
	}
	if !sun.Static() {
		t.Error("Sun elements should be static")
	}

	for _, b := range Bodies {
		if b == Sun {
			continue
		}
		el, err := ElementsFor(b)
		if err != nil {
			t.Fatalf("ElementsFor(%v): %v", b, err)
		}
		if el.SemiMajorAU <= 0 {
			t.Errorf("%v: a = %v, want > 0", b, el.SemiMajorAU)
		}
		if el.Eccentricity < 0 || el.Eccentricity >= 1 {
			t.Errorf("%v: e = %v, want [0, 1)", b, el.Eccentricity)
		}
	}

	if _, err := ElementsFor(Body(99)); !errors.Is(err, errors.ErrUnknownBody) {
		t.Errorf("ElementsFor(99) err = %v, want UNKNOWN_BODY", err)
	}
}

func TestElementsForReturnsCopy(t *testing.T) {
	el, _ := ElementsFor(Mars)
	el.SemiMajorAU = 100

	again, _ := ElementsFor(Mars)
	if again.SemiMajorAU == 100 {
		t.Error("mutating a returned Elements changed the table")
	}
}

func TestBodyPeriod(t *testing.T) {
	tests := []struct {
		body Body
		want float64 // days
		tol  float64
	}{
		{Sun, 0, 0},
		{Mercury, 87.969, 0.01},
		{Venus, 224.70, 0.01},
		{Earth, 365.2564, 0.001},
		{Moon, 27.3216, 0.001},
		{Mars, 686.98, 0.01},
		{Jupiter, 4332.8, 0.5},
		{Saturn, 10755.9, 1},
		{Uranus, 30687.4, 2},
		{Neptune, 60189.7, 5},
	}

	for _, tt := range tests {
		if got := tt.body.Period(); math.Abs(got-tt.want) > tt.tol {
			t.Errorf("%v.Period() = %.4f, want %.4f", tt.body, got, tt.want)
		}
	}
}
