// Package tagcloud turns lines of text into a ranked, size-annotated list of
// the most frequent words.
//
// The pipeline is linear and single-threaded: lines are tokenized, words are
// counted, the top N are selected by count, and each selected word receives a
// font size interpolated between the selection's smallest and largest counts.
// Failures are all-or-nothing; no partial cloud is ever returned.
package tagcloud

// Stage names a step of the pipeline.
type Stage string

const (
	StageIdle        Stage = "idle"
	StageTokenizing  Stage = "tokenizing"
	StageAggregating Stage = "aggregating"
	StageSelecting   Stage = "selecting"
	StageSizeMapping Stage = "size_mapping"
	StageReady       Stage = "ready"
)

// Cloud is the render payload: selected terms in alphabetical order plus the
// values a renderer needs for its heading.
type Cloud struct {
	Source   string       `json:"source"`
	N        int          `json:"n"`
	MinCount int          `json:"min_count"`
	MaxCount int          `json:"max_count"`
	Terms    []RankedTerm `json:"terms"`
}

// Build selects and sizes the n most frequent words of freq.
// n == 0 yields an empty cloud without error.
func Build(freq Frequencies, n int, source string) (*Cloud, error) {
	return build(freq, n, source, nil)
}

// Generate runs the full pipeline over lr. observe, if non-nil, is called as
// each stage begins.
func Generate(lr LineReader, seps SeparatorSet, n int, source string, observe func(Stage)) (*Cloud, error) {
	enter := func(s Stage) {
		if observe != nil {
			observe(s)
		}
	}

	// Tokenizing and aggregating share one pass over the input.
	enter(StageTokenizing)
	enter(StageAggregating)
	freq, err := Aggregate(lr, seps)
	if err != nil {
		return nil, err
	}
	return build(freq, n, source, enter)
}

func build(freq Frequencies, n int, source string, enter func(Stage)) (*Cloud, error) {
	if enter == nil {
		enter = func(Stage) {}
	}
	if err := ValidateN(n, freq.Len()); err != nil {
		return nil, err
	}

	enter(StageSelecting)
	selected, err := Select(freq.Terms(), n)
	if err != nil {
		return nil, err
	}

	cloud := &Cloud{Source: source, N: n, Terms: []RankedTerm{}}
	if n == 0 {
		enter(StageReady)
		return cloud, nil
	}

	enter(StageSizeMapping)
	bounds := BoundsOf(selected)
	cloud.MinCount = bounds.Min
	cloud.MaxCount = bounds.Max
	cloud.Terms = Annotate(selected)

	enter(StageReady)
	return cloud, nil
}
