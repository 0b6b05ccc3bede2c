package poisson

// State describes where a Sampler is in it's life.
type State int

const (
	// Empty: no point has been accepted yet
	Empty State = iota

	// Seeded: one or more seeds accepted, Step not yet called
	Seeded

	// Growing: Step has been called & there are active points left
	Growing

	// Exhausted: there are no active points left, Step does nothing.
	Exhausted
)

// String returns the name of the state
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Seeded:
		return "seeded"
	case Growing:
		return "growing"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}
