package dist

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func TestNewCategoricalValidatesSimplex(t *testing.T) {
	cases := []struct {
		name  string
		probs []float64
	}{
		{"negative entry", []float64{0.5, 0.7, -0.2}},
		{"sum below one", []float64{0.2, 0.2, 0.2}},
		{"sum above one", []float64{0.5, 0.5, 0.5}},
	}
	for _, tc := range cases {
		_, err := NewCategorical(mat.NewDense(1, 3, tc.probs))
		var paramsErr *InvalidParamsError
		if !errors.As(err, &paramsErr) {
			t.Errorf("%s: expected InvalidParamsError, got %v", tc.name, err)
		}
	}
}

func TestCategoricalSampleInRange(t *testing.T) {
	probs := mat.NewDense(2, 3, []float64{
		0.2, 0.3, 0.5,
		1, 0, 0,
	})
	c, err := NewCategorical(probs)
	if err != nil {
		t.Fatal(err)
	}
	src := rand.NewSource(5)
	for trial := 0; trial < 20; trial++ {
		ks := c.Sample(src)
		if len(ks) != 2 {
			t.Fatalf("expected 2 samples, got %d", len(ks))
		}
		for _, k := range ks {
			if k < 0 || k >= 3 {
				t.Fatalf("class %d out of range", k)
			}
		}
		if ks[1] != 0 {
			t.Fatalf("degenerate row sampled class %d, want 0", ks[1])
		}
	}
}

func TestCategoricalLogProb(t *testing.T) {
	c, err := NewCategorical(mat.NewDense(1, 2, []float64{0.25, 0.75}))
	if err != nil {
		t.Fatal(err)
	}
	lp, err := c.LogProb([]int{1})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(lp[0]-math.Log(0.75)) > 1e-12 {
		t.Fatalf("log prob %v, want %v", lp[0], math.Log(0.75))
	}
	if _, err := c.LogProb([]int{2}); err == nil {
		t.Fatal("expected error for out-of-range class")
	}
	if _, err := c.LogProb([]int{0, 1}); err == nil {
		t.Fatal("expected error for wrong batch size")
	}
}
