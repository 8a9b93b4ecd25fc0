package scalerel

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestHB2008MedianArea(t *testing.T) {
	tests := []struct {
		mag  float64
		want float64
	}{
		{5.0, 10.471285480508996},
		{6.71, 537.0317963702527},
		{7.2, 1251.6992730317268},
	}
	for _, tt := range tests {
		got := HB2008{}.MedianArea(tt.mag, math.NaN())
		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("MedianArea(%v) = %v, want %v", tt.mag, got, tt.want)
		}
	}
}

func TestHB2008ContinuousAtHinge(t *testing.T) {
	below := HB2008{}.MedianArea(6.71, 0)
	above := HB2008{}.MedianArea(6.71+1e-9, 0)
	if math.Abs(below-above) > 1e-5 {
		t.Fatalf("discontinuity at hinge: %v vs %v", below, above)
	}
}

func TestWC1994MedianArea(t *testing.T) {
	tests := []struct {
		name string
		mag  float64
		rake float64
		want float64
	}{
		{"unknown rake", 5, math.NaN(), 11.481536214968818},
		{"strike slip", 6, 0, 95.49925860214368},
		{"strike slip wrapped", 6, 170, 95.49925860214368},
		{"reverse", 6, 90, 77.62471166286912},
		{"normal", 6, -90, 112.2018454301963},
	}
	for _, tt := range tests {
		got := WC1994{}.MedianArea(tt.mag, tt.rake)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("%s: MedianArea(%v, %v) = %v, want %v",
				tt.name, tt.mag, tt.rake, got, tt.want)
		}
	}
}

func TestPeerMSRMedianArea(t *testing.T) {
	if got := (PeerMSR{}).MedianArea(6, 0); math.Abs(got-100) > 1e-12 {
		t.Fatalf("MedianArea(6) = %v, want 100", got)
	}
}

func TestCEUS2011MedianArea(t *testing.T) {
	if got := (CEUS2011{}).MedianArea(6, 0); math.Abs(got-43.0526610491711) > 1e-9 {
		t.Fatalf("MedianArea(6) = %v", got)
	}
}

func TestRegistry(t *testing.T) {
	want := []string{"CEUS2011", "HB2008", "PeerMSR", "WC1994"}
	if got := List(); !reflect.DeepEqual(got, want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}

	rel, err := Get("WC1994")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rel.Name() != "WC1994" {
		t.Fatalf("Name() = %q", rel.Name())
	}

	if _, err := Get("NoSuch"); !errors.Is(err, ErrRelationNotFound) {
		t.Fatalf("missing relationship: got %v", err)
	}
	if err := Register(HB2008{}); !errors.Is(err, ErrRelationExists) {
		t.Fatalf("duplicate registration: got %v", err)
	}
}
