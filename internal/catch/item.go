package catch

// Kind is the type of a falling item. Three fruit kinds score points when
// caught; a bomb ends the game when caught and is harmless when missed.
type Kind int

const (
	KindApple Kind = iota
	KindPear
	KindOrange
	KindBomb
)

func (k Kind) String() string {
	switch k {
	case KindApple:
		return "apple"
	case KindPear:
		return "pear"
	case KindOrange:
		return "orange"
	case KindBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// IsFruit reports whether catching this kind scores points.
func (k Kind) IsFruit() bool {
	return k != KindBomb
}

// Item is a single falling object. Kind and Zone are fixed at spawn; Y is
// the normalized vertical position, 0 at the top growing past 1.0 at the
// bottom, mutated only by the per-tick motion step.
//
// Once Caught or Resolved is set the item is inert: it takes no further
// part in catch/miss evaluation and is removed by garbage collection.
type Item struct {
	Kind     Kind
	Zone     Zone
	Y        float64
	Caught   bool
	Resolved bool
}

// live reports whether the item still participates in resolution.
func (it *Item) live() bool {
	return !it.Caught && !it.Resolved
}
