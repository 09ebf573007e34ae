package classifier

import (
	"encoding/json"
	"testing"
)

func TestReadingJSON(t *testing.T) {
	raw := `{"label":"left","confidence":0.93}`

	var r Reading
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if r.Label != "left" {
		t.Errorf("Label = %q, expected \"left\"", r.Label)
	}
	if r.Confidence != 0.93 {
		t.Errorf("Confidence = %v, expected 0.93", r.Confidence)
	}
}

func TestGate(t *testing.T) {
	g := Gate{MinConfidence: 0.8}

	tests := []struct {
		reading Reading
		want    bool
	}{
		{Reading{Label: "left", Confidence: 0.95}, true},
		{Reading{Label: "center", Confidence: 0.8}, true},
		{Reading{Label: "right", Confidence: 0.79}, false},
		{Reading{Label: "left", Confidence: 0}, false},
	}

	for _, tt := range tests {
		if got := g.Accept(tt.reading); got != tt.want {
			t.Errorf("Accept(%+v) = %v, expected %v", tt.reading, got, tt.want)
		}
	}
}

func TestGateZeroValuePassesEverything(t *testing.T) {
	var g Gate
	if !g.Accept(Reading{Label: "left"}) {
		t.Error("zero-value gate should accept all readings")
	}
}

func TestPublishLatestWins(t *testing.T) {
	s := NewFeedServer(":0", 0)

	s.publish(Reading{Label: "left", Confidence: 1})
	s.publish(Reading{Label: "right", Confidence: 1})

	got := <-s.Readings()
	if got.Label != "right" {
		t.Errorf("received %q, expected the most recent reading \"right\"", got.Label)
	}

	select {
	case extra := <-s.Readings():
		t.Errorf("unexpected buffered reading %+v", extra)
	default:
	}
}
