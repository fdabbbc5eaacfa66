package nn

import "fmt"

// InvalidTopologyError reports a network constructed with unusable sizes
// or bounds. Nothing partially built is returned alongside it.
type InvalidTopologyError struct {
	Reason string
}

func (e *InvalidTopologyError) Error() string {
	return "invalid topology: " + e.Reason
}

func topologyErrorf(format string, args ...interface{}) error {
	return &InvalidTopologyError{Reason: fmt.Sprintf(format, args...)}
}

// ShapeMismatchError reports an input whose trailing dimension disagrees
// with a layer's declared input size. It surfaces at forward time.
type ShapeMismatchError struct {
	Want, Got int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: layer expects %d input features, got %d", e.Want, e.Got)
}
