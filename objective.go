package divmax

import "fmt"

// Objective selects the diversity measure to maximize.
type Objective int

const (
	// RemoteEdge maximizes the minimum pairwise distance of the selected set.
	RemoteEdge Objective = iota
)

func (o Objective) String() string {
	switch o {
	case RemoteEdge:
		return "RemoteEdge"
	default:
		return fmt.Sprintf("Unknown(%d)", o)
	}
}

// Valid reports whether o is a supported objective.
func (o Objective) Valid() bool {
	return o == RemoteEdge
}
