package ai

// Weights scale each normalized metric. The line term rewards clears; the
// other three reward low, flat, hole-free stacks.
type Weights struct {
	LineCount  float64 `yaml:"line_count"`
	HeightMax  float64 `yaml:"height_max"`
	HeightDiff float64 `yaml:"height_diff"`
	DeadSpace  float64 `yaml:"dead_space"`
}

// DefaultWeights returns the standard weighting.
func DefaultWeights() Weights {
	return Weights{
		LineCount:  100,
		HeightMax:  1,
		HeightDiff: 10,
		DeadSpace:  30,
	}
}

// Score combines the metrics into one value. Higher is better.
func (w Weights) Score(m Metrics) float64 {
	return w.LineCount*normalize(m.LineCount, 0, lineCountMax) +
		w.HeightMax*(1-normalize(m.HeightMax, 0, heightMaxMax)) +
		w.HeightDiff*(1-normalize(m.HeightDiff, 0, heightDiffMax)) +
		w.DeadSpace*(1-normalize(m.DeadSpace, 0, deadSpaceMax))
}
