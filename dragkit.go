package dragkit

// Vec2 is a 2D vector used for positions, offsets, and drag translations
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Axes selects which translation components a drag is permitted to
// visually apply.
type Axes uint8

const (
	AxesBoth       Axes = iota // translation applies on both axes (default)
	AxesHorizontal             // vertical component is zeroed
	AxesVertical               // horizontal component is zeroed
)

// Phase is the drag lifecycle state of a Behavior.
type Phase uint8

const (
	PhaseAtRest   Phase = iota // no drag in progress; initial and terminal state
	PhaseDragging              // live offset driven by continuous change events
)
