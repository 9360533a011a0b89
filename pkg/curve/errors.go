package curve

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-secp256k1-math/pkg/field"
)

var (
	// ErrPointNotOnCurve reports coordinates that do not satisfy
	// y^2 = x^3 + 7.
	ErrPointNotOnCurve = errors.New("curve: point is not on the curve")

	// ErrInconsistentPoints reports an addition of two alleged curve
	// points that share an x-coordinate but whose y-coordinates are
	// not negations of each other. Two valid points can never trigger
	// it; seeing it means an invalid point entered the system.
	ErrInconsistentPoints = errors.New("curve: inconsistent points in addition")
)

// PointError decorates a point-level failure with the offending
// coordinates. It unwraps to one of the sentinel errors above, so
// callers can branch with errors.Is.
type PointError struct {
	X, Y field.Element
	Err  error
}

func (e *PointError) Error() string {
	return fmt.Sprintf("%v: x=%s y=%s", e.Err, e.X.Hex(), e.Y.Hex())
}

func (e *PointError) Unwrap() error {
	return e.Err
}

func newPointError(x, y field.Element, err error) *PointError {
	return &PointError{X: x, Y: y, Err: err}
}
