package signals

import "strings"

// Counts holds keyword hits per signal bucket for one generated text.
// The buckets are heuristics for categorical behaviors, not quality
// scores.
type Counts struct {
	AdaptiveBranching   int
	OperationGeneration int
	MultiVoice          int
	SelfPrediction      int
	MetaReasoning       int
}

func (c Counts) Total() int {
	return c.AdaptiveBranching +
		c.OperationGeneration +
		c.MultiVoice +
		c.SelfPrediction +
		c.MetaReasoning
}

// output structure changes based on input properties
var branchingWords = []string{
	"if ", "because the structure", "since this is", "this is hierarchical",
	"this is flat", "branching", "the other path", "other branch",
	"had i chosen", "the alternative",
}

// operations derived from the input, not from the prompt
var generationWords = []string{
	"operation 1", "operation 2", "operation 3",
	"i derive", "i identify", "the most useful",
	"this structure suggests", "specific to this",
}

// distinct perspectives engaging each other
var voiceWords = []string{
	"expert 1", "expert 2", "expert 3", "disagrees", "counters",
	"pushes back", "the first expert", "the second", "the third",
	"the defender", "the critic", "perspective 1", "perspective 2",
}

// the model predicts its own trajectory, then evaluates
var predictionWords = []string{
	"i predict", "my prediction", "i expected", "was i right",
	"the gap between", "blind spot", "i didn't anticipate",
	"surprisingly", "contrary to my expectation",
}

// reasoning about its own analytical process
var metaWords = []string{
	"my framing", "my analysis", "this frame hides", "what i missed",
	"the other branch would", "i chose this path because",
	"the argument itself reveals", "emergent",
}

func countHits(text string, words []string) (n int) {
	for _, word := range words {
		if strings.Contains(text, word) {
			n++
		}
	}
	return
}

// Detect scans generated text for signal keywords. Case-insensitive;
// each keyword counts at most once.
func Detect(text string) Counts {
	text = strings.ToLower(text)
	return Counts{
		AdaptiveBranching:   countHits(text, branchingWords),
		OperationGeneration: countHits(text, generationWords),
		MultiVoice:          countHits(text, voiceWords),
		SelfPrediction:      countHits(text, predictionWords),
		MetaReasoning:       countHits(text, metaWords),
	}
}
