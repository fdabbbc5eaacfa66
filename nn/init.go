package nn

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Initializer sets a Linear layer's weight matrix in place. Bias rows
// are left at zero and non-affine modules are untouched.
type Initializer func(*Linear)

// XavierNormal draws weights from a zero-mean normal whose variance is
// 2/(fanIn+fanOut), keeping activation variance stable across layers.
func XavierNormal(l *Linear) {
	xavierNormalFrom(nil)(l)
}

// XavierNormalSource is XavierNormal drawing from the given source,
// for reproducible construction.
func XavierNormalSource(src rand.Source) Initializer {
	return xavierNormalFrom(src)
}

func xavierNormalFrom(src rand.Source) Initializer {
	return func(l *Linear) {
		fanOut, fanIn := l.W.Dims()
		dist := distuv.Normal{
			Mu:    0,
			Sigma: math.Sqrt(2.0 / float64(fanIn+fanOut)),
			Src:   src,
		}
		for i := 0; i < fanOut; i++ {
			for j := 0; j < fanIn; j++ {
				l.W.Set(i, j, dist.Rand())
			}
		}
	}
}

// initLayers runs the initializer over every owned affine sublayer,
// exactly once per layer.
func initLayers(init Initializer, layers []*Linear) {
	if init == nil {
		init = XavierNormal
	}
	for _, l := range layers {
		init(l)
	}
}
