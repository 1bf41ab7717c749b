// File: poem.go
// Role: Bridge-word search and poem assembly. Read-only over the graph.

package poet

import (
	"strings"

	"go.uber.org/zap"
)

// Poem returns sentence with a bridge word inserted between every adjacent
// pair of words that a two-hop corpus path connects.
//
// Input tokens are emitted verbatim, inserted words are lower-case, and all
// tokens are joined by one space. Zero tokens give "", one token is
// returned unchanged. Poem never mutates the Poet.
//
// Complexity: O(n · d) for n input tokens and average neighbor degree d.
func (p *Poet) Poem(sentence string) string {
	words := strings.Fields(sentence)
	if len(words) < 2 {
		return strings.Join(words, " ")
	}

	out := make([]string, 0, 2*len(words)-1)
	out = append(out, words[0])
	for i := 1; i < len(words); i++ {
		if bridge, ok := p.Bridge(words[i-1], words[i]); ok {
			out = append(out, bridge)
		}
		out = append(out, words[i])
	}

	return strings.Join(out, " ")
}

// Bridge finds the bridge word between from and to.
//
// A candidate x needs both lower(from)→x and x→lower(to). The winner has the
// largest w(from→x)·w(x→to); equal products fall back to the smallest x.
// ok is false when no candidate exists.
func (p *Poet) Bridge(from, to string) (word string, ok bool) {
	a, b := normalize(from), normalize(to)
	outs := p.graph.Targets(a)
	ins := p.graph.Sources(b)

	// iterate the smaller side, probe the larger
	small, large := outs, ins
	if len(ins) < len(outs) {
		small, large = ins, outs
	}

	var best int64
	for x, w := range small {
		v, found := large[x]
		if !found {
			continue
		}
		score := w * v
		if !ok || score > best || (score == best && x < word) {
			word, best, ok = x, score, true
		}
	}

	if ok {
		p.log.Debug("bridge selected",
			zap.String("from", a),
			zap.String("to", b),
			zap.String("bridge", word),
			zap.Int64("score", best),
		)
	}

	return word, ok
}
