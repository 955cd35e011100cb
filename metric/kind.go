package metric

import "fmt"

// Kind enumerates the built-in metric views.
type Kind int

const (
	KindAngular Kind = iota
	KindEuclidean
)

func (k Kind) String() string {
	switch k {
	case KindAngular:
		return "Angular"
	case KindEuclidean:
		return "Euclidean"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Valid reports whether k names a built-in metric.
func (k Kind) Valid() bool {
	return k == KindAngular || k == KindEuclidean
}
