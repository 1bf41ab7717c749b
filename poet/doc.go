// Package poet builds a word-adjacency graph from a corpus and uses it to
// embellish sentences with "bridge words".
//
// Construction (New, NewFromFile):
//
//	corpus ──ScanWords──▶ tokens ──ToLower──▶ keys
//	for each consecutive pair (w_i, w_i+1): IncrementEdge(w_i, w_i+1, 1)
//
// Tokens are maximal runs of non-whitespace; punctuation stays attached, so
// "Hello," and "hello," share a vertex while "hello" is a different one.
// Every token becomes a vertex, even in a one-word corpus.
//
// Poem generation (Poem):
//
//	for each consecutive input pair (A, B):
//	    a, b := lower(A), lower(B)
//	    candidates := Targets(a) ∩ Sources(b)
//	    winner := argmax w(a→x)·w(x→b), ties → smallest x
//	    emit A [winner] …
//
// Input tokens keep their original casing; inserted bridge words are the
// lower-case graph keys. Output tokens are joined by single spaces.
//
// A *Poet is fully built before it is returned and never mutated afterwards,
// so Poem, Bridge and Graph are safe to call from any number of goroutines.
//
// Errors:
//
//	ErrCorpusRead      – the corpus could not be opened or read (wraps the cause)
//	ErrOptionViolation – an Option received an invalid value
package poet
