// Package classifier receives pose classification readings and forwards the
// stabilized zone labels to the game. The classifier itself (webcam, pose
// model) runs externally, typically in a browser; this package is only the
// transport and filtering side.
package classifier

// Reading is one classification result: a zone label plus the model's
// confidence in it.
type Reading struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Source is an asynchronous stream of readings. The game loop drains the
// channel and applies the most recent label; it never blocks the producer.
type Source interface {
	Readings() <-chan Reading
	Close() error
}

// Gate drops readings below a minimum confidence. The feed is expected to
// be pre-stabilized, but a gate tolerates ones that are not.
type Gate struct {
	MinConfidence float64
}

// Accept reports whether the reading clears the confidence threshold.
func (g Gate) Accept(r Reading) bool {
	return r.Confidence >= g.MinConfidence
}
