// Package thinking recovers a model's reasoning trace from otherwise
// unstructured response text.
//
// The base Extractor is a marker scanner: it locates an opening marker
// (explicit tag, fenced-code-block label, or label-colon prefix), the
// matching closing marker, and an optional "final answer" label after the
// close, and splits the text into a thinking segment and an answer
// segment. Vendor-specialized extractors add their own marker vocabulary
// as a second pass behind the base algorithm.
//
// The Helper coordinates the three acquisition channels an adapter may
// have: the vendor's native reasoning field, a "show reasoning" tool
// invocation payload, and the plain-text scan. Extraction is best-effort
// by contract: no input, however malformed, makes it fail the call.
package thinking
