package dist

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func TestNewNormalRejectsNonPositiveScale(t *testing.T) {
	mu := mat.NewDense(2, 2, nil)
	for _, bad := range []float64{0, -1, math.NaN()} {
		sigma := mat.NewDense(2, 2, []float64{1, 1, 1, bad})
		_, err := NewNormal(mu, sigma)
		var paramsErr *InvalidParamsError
		if !errors.As(err, &paramsErr) {
			t.Errorf("scale %v: expected InvalidParamsError, got %v", bad, err)
		}
	}
}

func TestNewNormalRejectsShapeMismatch(t *testing.T) {
	_, err := NewNormal(mat.NewDense(2, 3, nil), mat.NewDense(2, 2, []float64{1, 1, 1, 1}))
	if err == nil {
		t.Fatal("expected error for mismatched mu/sigma shapes")
	}
}

func TestNormalSampleShape(t *testing.T) {
	mu := mat.NewDense(3, 2, nil)
	sigma := mat.NewDense(3, 2, []float64{1, 1, 1, 1, 1, 1})
	n, err := NewNormal(mu, sigma)
	if err != nil {
		t.Fatal(err)
	}
	s := n.Sample(rand.NewSource(3))
	if r, c := s.Dims(); r != 3 || c != 2 {
		t.Fatalf("sample shape (%d,%d), want (3,2)", r, c)
	}
}

func TestNormalSampleTracksScale(t *testing.T) {
	mu := mat.NewDense(1, 1000, nil)
	sigma := mat.NewDense(1, 1000, nil)
	for j := 0; j < 1000; j++ {
		sigma.Set(0, j, 0.001)
	}
	n, err := NewNormal(mu, sigma)
	if err != nil {
		t.Fatal(err)
	}
	s := n.Sample(rand.NewSource(11))
	for j := 0; j < 1000; j++ {
		if math.Abs(s.At(0, j)) > 0.01 {
			t.Fatalf("sample %v at column %d too far from mean for sigma 0.001", s.At(0, j), j)
		}
	}
}

func TestNormalLogProb(t *testing.T) {
	mu := mat.NewDense(1, 1, nil)
	sigma := mat.NewDense(1, 1, []float64{1})
	n, err := NewNormal(mu, sigma)
	if err != nil {
		t.Fatal(err)
	}
	lp, err := n.LogProb(mat.NewDense(1, 1, nil))
	if err != nil {
		t.Fatal(err)
	}
	want := -0.5 * math.Log(2*math.Pi)
	if math.Abs(lp.At(0, 0)-want) > 1e-12 {
		t.Fatalf("log prob %v, want %v", lp.At(0, 0), want)
	}
}
