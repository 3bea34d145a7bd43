package thinking

import (
	"strings"
)

// Result is the outcome of one extraction pass. Thinking and Answer are
// independently absent: an open marker with no close yields thinking and
// no answer; text without markers yields the whole input as the answer.
type Result struct {
	Thinking    string
	Answer      string
	HasThinking bool
	HasAnswer   bool
}

// Extractor splits raw response text into a thinking segment and an
// answer segment. Implementations never fail: malformed or adversarial
// input always yields a Result.
type Extractor interface {
	Extract(text string) Result
}

// markerPair couples an opening marker with its matching closing marker.
// Fence pairs close on the next fence token; label pairs (a "Thinking:"
// style prefix) close on the first blank line.
type markerPair struct {
	open  string
	close string
	fence bool // open runs to end of line before thinking starts
	tag   bool // explicit tag; eligible for open-synthesis when only the close appears
}

// answerLookahead bounds how far past the closing marker the scanner
// searches for a "final answer" label.
const answerLookahead = 200

// BaseExtractor implements the generic marker vocabulary shared by all
// vendors.
type BaseExtractor struct {
	pairs  []markerPair
	labels []string
}

// NewBaseExtractor creates an extractor with the generic marker set.
func NewBaseExtractor() *BaseExtractor {
	return &BaseExtractor{
		// Longer markers precede their prefixes ("<thinking>" before
		// "<think>") so position ties resolve to the longest match.
		pairs: []markerPair{
			{open: "<thinking>", close: "</thinking>", tag: true},
			{open: "<reasoning>", close: "</reasoning>", tag: true},
			{open: "<think>", close: "</think>", tag: true},
			{open: "```thinking", close: "```", fence: true},
			{open: "```reasoning", close: "```", fence: true},
			{open: "```think", close: "```", fence: true},
			{open: "Thinking:", close: "\n\n"},
			{open: "Reasoning:", close: "\n\n"},
		},
		labels: []string{
			"Final Answer:",
			"Final answer:",
			"Answer:",
			"最终答案：",
			"最终答案:",
			"答案：",
			"答案:",
			"回答：",
			"回答:",
		},
	}
}

// Extract implements Extractor. It never panics: any failure during
// scanning degrades to returning the whole input as the answer.
func (e *BaseExtractor) Extract(text string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Answer: text, HasAnswer: true}
		}
	}()
	return scan(text, e.pairs, e.labels)
}

// scan runs the marker state machine over text with the given
// vocabulary, tracking only the scan cursor. It is shared by the base
// and vendor-specialized extractors.
func scan(text string, pairs []markerPair, labels []string) Result {
	cursor := 0

	pair, openPos := findFirstOpen(text, pairs)
	if openPos < 0 {
		// No opening marker. An explicit close tag with no open means
		// the vendor omitted the open; synthesize one at position zero.
		pair, openPos = findOrphanClose(text, pairs)
		if openPos < 0 {
			return Result{Answer: text, HasAnswer: true}
		}
	} else {
		cursor = openPos + len(pair.open)
		if pair.fence {
			// The fence label runs to end of line.
			if nl := strings.IndexByte(text[cursor:], '\n'); nl >= 0 {
				cursor += nl + 1
			} else {
				cursor = len(text)
			}
		}
	}

	closePos := findAfter(text, cursor, pair.close)
	if closePos < 0 {
		// Open-ended thinking block: everything after the marker is the
		// trace and there is no answer.
		return Result{
			Thinking:    strings.TrimSpace(text[cursor:]),
			HasThinking: true,
		}
	}

	thinkingText := strings.TrimSpace(text[cursor:closePos])
	rest := closePos + len(pair.close)
	answerStart := rest

	// A "final answer" label shortly after the close moves the answer
	// start past the label.
	if pos, label := findFirstLabel(text, rest, labels); pos >= 0 {
		answerStart = pos + len(label)
	}

	return Result{
		Thinking:    thinkingText,
		HasThinking: true,
		Answer:      strings.TrimSpace(text[answerStart:]),
		HasAnswer:   true,
	}
}

// findFirstOpen returns the pair whose opening marker appears earliest
// in text, breaking position ties by vocabulary order.
func findFirstOpen(text string, pairs []markerPair) (markerPair, int) {
	best := -1
	var bestPair markerPair
	for _, p := range pairs {
		if pos := strings.Index(text, p.open); pos >= 0 && (best < 0 || pos < best) {
			best = pos
			bestPair = p
		}
	}
	return bestPair, best
}

// findOrphanClose looks for an explicit close tag with no corresponding
// open. Fence and blank-line closes are too ambiguous to synthesize an
// open for; only tag pairs qualify.
func findOrphanClose(text string, pairs []markerPair) (markerPair, int) {
	for _, p := range pairs {
		if !p.tag {
			continue
		}
		if pos := strings.Index(text, p.close); pos >= 0 {
			return p, 0
		}
	}
	return markerPair{}, -1
}

// findAfter returns the index of the first occurrence of marker at or
// after from, or -1.
func findAfter(text string, from int, marker string) int {
	if from >= len(text) {
		return -1
	}
	pos := strings.Index(text[from:], marker)
	if pos < 0 {
		return -1
	}
	return from + pos
}

// findFirstLabel returns the earliest answer label within the lookahead
// window starting at from.
func findFirstLabel(text string, from int, labels []string) (int, string) {
	end := from + answerLookahead
	if end > len(text) {
		end = len(text)
	}
	if from >= end {
		return -1, ""
	}
	window := text[from:end]
	best := -1
	var bestLabel string
	for _, label := range labels {
		if pos := strings.Index(window, label); pos >= 0 && (best < 0 || pos < best) {
			best = pos
			bestLabel = label
		}
	}
	if best < 0 {
		return -1, ""
	}
	return from + best, bestLabel
}
