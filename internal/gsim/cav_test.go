package gsim

import (
	"errors"
	"math"
	"testing"
)

func TestLnUniformDuration(t *testing.T) {
	cases := []struct {
		lnPGA, vs30, want float64
	}{
		{math.Log(0.5), 400, 2.2853843925},
		{math.Log(1.5), 600, 2.49378530923},
		{math.Log(0.01), 800, 15.8137138645},
	}
	for _, c := range cases {
		got, sigma := LnUniformDuration(c.lnPGA, 6.5, math.Log(c.vs30))
		if math.Abs(got-c.want) > 1e-10 {
			t.Fatalf("ln dur at pga %v = %.12f, want %.12f", math.Exp(c.lnPGA), got, c.want)
		}
		if sigma != 0.509 {
			t.Fatalf("sigma = %v, want 0.509", sigma)
		}
	}
}

func TestLnCAV(t *testing.T) {
	cases := []struct {
		lnPGA, vs30, wantCAV, wantSigma float64
	}{
		{math.Log(0.5), 400, 0.00751349301524, 0.488189358109},
		{math.Log(1.5), 600, 0.43961813399, 0.495314119819},
		{math.Log(0.01), 800, 18.0695339524, 0.955459267883},
	}
	for _, c := range cases {
		lnCAV, sigma := LnCAV(c.lnPGA, 6.5, math.Log(c.vs30))
		if math.Abs(lnCAV-c.wantCAV) > 1e-10 {
			t.Fatalf("ln CAV at pga %v = %.12f, want %.12f", math.Exp(c.lnPGA), lnCAV, c.wantCAV)
		}
		if math.Abs(sigma-c.wantSigma) > 1e-10 {
			t.Fatalf("sigma at pga %v = %.12f, want %.12f", math.Exp(c.lnPGA), sigma, c.wantSigma)
		}
	}
}

func TestCAVExceedanceProb(t *testing.T) {
	lnPGA := []float64{math.Log(0.5), math.Log(1.5), math.Log(0.01)}
	vs30 := []float64{400, 600, 800}

	prob, err := CAVExceedanceProb(lnPGA, 6.5, vs30, 0.16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The third PGA is below the 0.025 g accumulation threshold and
	// contributes nothing regardless of its predicted CAV.
	checkVector(t, "prob", prob, []float64{
		0.999918122002, 0.999997755903, 0,
	}, 1e-10)
}

func TestCAVExceedanceProbDisabled(t *testing.T) {
	lnPGA := []float64{math.Log(0.5), math.Log(0.001)}
	vs30 := []float64{400, 400}

	prob, err := CAVExceedanceProb(lnPGA, 6.5, vs30, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkVector(t, "prob", prob, []float64{1, 1}, 0)

	// Disabled means disabled regardless of the other inputs; even a
	// vs30 array of the wrong length is never consulted.
	prob, err = CAVExceedanceProb(lnPGA, 6.5, nil, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkVector(t, "prob", prob, []float64{1, 1}, 0)
}

func TestCAVExceedanceProbLengthMismatch(t *testing.T) {
	_, err := CAVExceedanceProb([]float64{0, 0}, 6.5, []float64{400}, 0.16)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("got %v, want ErrLengthMismatch", err)
	}
}
