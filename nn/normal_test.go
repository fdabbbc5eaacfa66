package nn

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"rlkit/dist"
)

func TestNormalMLPStdOnes(t *testing.T) {
	head, err := NewNormalMLP(NormalConfig{
		InputSize:   4,
		HiddenSizes: []int{8},
		OutputSize:  2,
		StdOnes:     true,
	})
	if err != nil {
		t.Fatal(err)
	}
	d, err := head.Forward(mat.NewDense(3, 4, nil))
	if err != nil {
		t.Fatal(err)
	}
	mr, mc := d.Mean().Dims()
	sr, sc := d.StdDev().Dims()
	if mr != sr || mc != sc || sr != 3 || sc != 2 {
		t.Fatalf("sigma shape (%d,%d) does not match mu shape (%d,%d)", sr, sc, mr, mc)
	}
	for i := 0; i < sr; i++ {
		for j := 0; j < sc; j++ {
			if d.StdDev().At(i, j) != 1 {
				t.Fatalf("sigma[%d,%d] = %v, want exactly 1", i, j, d.StdDev().At(i, j))
			}
		}
	}
	// only the mean network's parameters exist
	want := 4*8 + 8 + 8*2 + 2
	if got := NumParams(head); got != want {
		t.Fatalf("expected %d parameters, got %d", want, got)
	}
}

func TestNormalMLPSharedTrunk(t *testing.T) {
	head, err := NewNormalMLP(NormalConfig{
		InputSize:       4,
		HiddenSizes:     []int{8},
		OutputSize:      2,
		SigmaActivation: Sigmoid{}, // keeps the scale positive
		ShareNet:        true,
	})
	if err != nil {
		t.Fatal(err)
	}
	d, err := head.Forward(mat.NewDense(3, 4, []float64{
		0.1, 0.2, 0.3, 0.4,
		-0.1, -0.2, -0.3, -0.4,
		1, 0, -1, 0.5,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if r, c := d.Dims(); r != 3 || c != 2 {
		t.Fatalf("expected (3,2) distribution, got (%d,%d)", r, c)
	}
	// one trunk layer plus two projection branches
	want := (4*8 + 8) + (8*2 + 2) + (8*2 + 2)
	if got := NumParams(head); got != want {
		t.Fatalf("expected %d parameters, got %d", want, got)
	}
}

func TestNormalMLPSeparateNets(t *testing.T) {
	head, err := NewNormalMLP(NormalConfig{
		InputSize:       4,
		HiddenSizes:     []int{8},
		OutputSize:      2,
		SigmaActivation: Sigmoid{},
		ShareNet:        false,
	})
	if err != nil {
		t.Fatal(err)
	}
	// two full networks
	want := 2 * (4*8 + 8 + 8*2 + 2)
	if got := NumParams(head); got != want {
		t.Fatalf("expected %d parameters, got %d", want, got)
	}
	if _, err := head.Forward(mat.NewDense(2, 4, nil)); err != nil {
		t.Fatal(err)
	}
}

func TestNormalMLPRejectsNonPositiveSigma(t *testing.T) {
	// Identity sigma activation with zeroed weights produces sigma = 0,
	// which must be rejected at forward time rather than clamped.
	head, err := NewNormalMLP(NormalConfig{
		InputSize:   3,
		HiddenSizes: []int{4},
		OutputSize:  2,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range head.Params() {
		p.Zero()
	}
	_, err = head.Forward(mat.NewDense(1, 3, []float64{1, 2, 3}))
	var paramsErr *dist.InvalidParamsError
	if !errors.As(err, &paramsErr) {
		t.Fatalf("expected dist.InvalidParamsError, got %v", err)
	}
}

func TestNormalMLPInvalidOutputSize(t *testing.T) {
	_, err := NewNormalMLP(NormalConfig{InputSize: 3, OutputSize: 0})
	var topoErr *InvalidTopologyError
	if !errors.As(err, &topoErr) {
		t.Fatalf("expected InvalidTopologyError, got %v", err)
	}
}

func TestNormalMLPShapeMismatch(t *testing.T) {
	head, err := NewNormalMLP(NormalConfig{
		InputSize: 4, HiddenSizes: []int{8}, OutputSize: 2, StdOnes: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = head.Forward(mat.NewDense(1, 7, nil))
	var shapeErr *ShapeMismatchError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ShapeMismatchError, got %v", err)
	}
}
