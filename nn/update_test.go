package nn

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func newPair(t *testing.T) (live, target *MLP) {
	t.Helper()
	cfg := Config{InputSize: 4, HiddenSizes: []int{8}, OutputSize: 2}
	live, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	target, err = New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return live, target
}

func TestHardUpdateCopiesAllParams(t *testing.T) {
	live, target := newPair(t)
	if err := HardUpdate(target, live); err != nil {
		t.Fatal(err)
	}
	lp, tp := live.Params(), target.Params()
	for i := range lp {
		if !mat.Equal(lp[i], tp[i]) {
			t.Fatalf("tensor %d differs after hard update", i)
		}
	}
}

func TestHardUpdateKeepsTensorsIndependent(t *testing.T) {
	live, target := newPair(t)
	if err := HardUpdate(target, live); err != nil {
		t.Fatal(err)
	}
	before := target.Params()[0].At(0, 0)
	live.Params()[0].Set(0, 0, before+42)
	if target.Params()[0].At(0, 0) != before {
		t.Fatal("mutating the live network changed the target")
	}
}

func TestHardUpdateTopologyMismatch(t *testing.T) {
	a, err := New(Config{InputSize: 4, HiddenSizes: []int{8}, OutputSize: 2})
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(Config{InputSize: 4, HiddenSizes: []int{6}, OutputSize: 2})
	if err != nil {
		t.Fatal(err)
	}
	if err := HardUpdate(a, b); err == nil {
		t.Fatal("expected error for mismatched topologies")
	}
}

func TestSoftUpdateBlends(t *testing.T) {
	live, target := newPair(t)
	live.Params()[0].Set(0, 0, 1)
	target.Params()[0].Set(0, 0, 3)

	if err := SoftUpdate(target, live, 0.75); err != nil {
		t.Fatal(err)
	}
	// 0.75*3 + 0.25*1 = 2.5
	if got := target.Params()[0].At(0, 0); math.Abs(got-2.5) > 1e-12 {
		t.Fatalf("blended value %v, want 2.5", got)
	}
}

func TestSoftUpdateTauRange(t *testing.T) {
	live, target := newPair(t)
	if err := SoftUpdate(target, live, 1.5); err == nil {
		t.Fatal("expected error for tau outside [0,1]")
	}
}
