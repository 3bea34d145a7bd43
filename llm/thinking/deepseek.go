package thinking

// DeepSeekExtractor augments the base extractor with the marker idiom
// DeepSeek-style reasoner models commonly emit. The base algorithm
// always runs first; the vendor vocabulary is only consulted when the
// generic scan recovers no thinking segment, and itself degrades to the
// base result on a miss.
type DeepSeekExtractor struct {
	*BaseExtractor

	vendorPairs  []markerPair
	vendorLabels []string
}

// NewDeepSeekExtractor creates an extractor with the DeepSeek marker
// vocabulary layered over the generic one.
func NewDeepSeekExtractor() *DeepSeekExtractor {
	return &DeepSeekExtractor{
		BaseExtractor: NewBaseExtractor(),
		vendorPairs: []markerPair{
			{open: "<思考>", close: "</思考>", tag: true},
			{open: "```推理", close: "```", fence: true},
			{open: "思考过程：", close: "\n\n"},
			{open: "思考过程:", close: "\n\n"},
			{open: "思考：", close: "\n\n"},
			{open: "思考:", close: "\n\n"},
			{open: "推理：", close: "\n\n"},
			{open: "推理:", close: "\n\n"},
			{open: "Chain of thought:", close: "\n\n"},
			{open: "Let me think through this:", close: "\n\n"},
		},
		vendorLabels: []string{
			"最终答案：",
			"最终答案:",
			"最终回答：",
			"最终回答:",
			"结论：",
			"结论:",
			"Final Answer:",
			"Final answer:",
		},
	}
}

// Extract implements Extractor with the two-pass strategy.
func (e *DeepSeekExtractor) Extract(text string) Result {
	base := e.BaseExtractor.Extract(text)
	if base.HasThinking {
		return base
	}
	return e.vendorPass(text, base)
}

// vendorPass runs the DeepSeek vocabulary, falling back to the base
// result on any failure or miss.
func (e *DeepSeekExtractor) vendorPass(text string, fallback Result) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = fallback
		}
	}()
	vendor := scan(text, e.vendorPairs, e.vendorLabels)
	if !vendor.HasThinking {
		return fallback
	}
	return vendor
}
