package stats

import (
	"math"
	"testing"
)

func TestNormCDFKnownValues(t *testing.T) {
	cases := []struct {
		x    float64
		want float64
	}{
		{0, 0.5},
		{1.96, 0.97500210485178},
		{-1.96, 0.02499789514822},
	}
	for _, c := range cases {
		got := NormCDF(c.x)
		if math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("NormCDF(%v) = %v, want %v", c.x, got, c.want)
		}
	}
}

func TestNormSurvivalComplements(t *testing.T) {
	for _, x := range []float64{-3, -0.5, 0, 0.5, 3} {
		sum := NormCDF(x) + NormSurvival(x)
		if math.Abs(sum-1) > 1e-14 {
			t.Fatalf("CDF + survival at %v = %v, want 1", x, sum)
		}
	}
	// The survival path must stay accurate where 1-CDF cancels.
	if s := NormSurvival(10); s <= 0 || s > 1e-20 {
		t.Fatalf("NormSurvival(10) = %v, want a tiny positive value", s)
	}
}

func TestNormPDF(t *testing.T) {
	if got := NormPDF(0); math.Abs(got-0.3989422804014327) > 1e-15 {
		t.Fatalf("NormPDF(0) = %v", got)
	}
	if got, want := NormPDF(2), NormPDF(-2); got != want {
		t.Fatalf("NormPDF not symmetric: %v vs %v", got, want)
	}
}

func TestNormCDFInvRoundTrip(t *testing.T) {
	for _, p := range []float64{1e-9, 0.01, 0.2, 0.5, 0.8, 0.99, 1 - 1e-9} {
		x := NormCDFInv(p)
		back := NormCDF(x)
		if math.Abs(back-p) > 1e-12 {
			t.Fatalf("NormCDF(NormCDFInv(%v)) = %v", p, back)
		}
	}
	if got := NormCDFInv(0.5); math.Abs(got) > 1e-14 {
		t.Fatalf("NormCDFInv(0.5) = %v, want 0", got)
	}
}

func TestNormCDFInvRejectsBounds(t *testing.T) {
	for _, p := range []float64{0, 1, -0.1, 1.1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("NormCDFInv(%v) did not panic", p)
				}
			}()
			NormCDFInv(p)
		}()
	}
}

func TestTruncNormCDF(t *testing.T) {
	a, b := -2.0, 2.0
	if got := TruncNormCDF(-3, a, b); got != 0 {
		t.Fatalf("below lower bound: got %v, want 0", got)
	}
	if got := TruncNormCDF(3, a, b); got != 1 {
		t.Fatalf("above upper bound: got %v, want 1", got)
	}
	if got := TruncNormCDF(0, a, b); math.Abs(got-0.5) > 1e-14 {
		t.Fatalf("symmetric truncation midpoint: got %v, want 0.5", got)
	}
}

func TestTruncNormCDFInvRoundTrip(t *testing.T) {
	a, b := -3.0, 3.0
	for _, p := range []float64{0.05, 0.3, 0.5, 0.7, 0.95} {
		x := TruncNormCDFInv(p, a, b)
		if x < a || x > b {
			t.Fatalf("quantile %v outside bounds: %v", p, x)
		}
		back := TruncNormCDF(x, a, b)
		if math.Abs(back-p) > 1e-12 {
			t.Fatalf("round trip at %v: got %v", p, back)
		}
	}
	if got := TruncNormCDFInv(0, a, b); got != a {
		t.Fatalf("p=0 should clamp to lower bound, got %v", got)
	}
	if got := TruncNormCDFInv(1, a, b); got != b {
		t.Fatalf("p=1 should clamp to upper bound, got %v", got)
	}
}
