// File: types.go
// Role: Poet type, construction options and sentinel errors.

package poet

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphpoet/wordgraph"
)

// Sentinel errors for poet construction.
var (
	// ErrCorpusRead is returned when the corpus source cannot be opened or read.
	// The underlying error stays reachable through errors.Is / errors.As.
	ErrCorpusRead = errors.New("poet: corpus read failed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("poet: invalid option supplied")
)

// DefaultMaxTokenSize caps the length in bytes of a single corpus token.
const DefaultMaxTokenSize = 64 * 1024

// initialBufSize is the scanner's starting buffer; it grows up to MaxTokenSize.
const initialBufSize = 4 * 1024

// Poet owns a word graph built from one corpus.
//
// Vertices are lower-cased corpus tokens; the weight of a→b counts how many
// times b directly followed a in the corpus.
type Poet struct {
	graph *wordgraph.Graph[string]
	log   *zap.Logger
}

// Graph returns the underlying word graph for inspection.
// Callers must treat it as read-only.
func (p *Poet) Graph() *wordgraph.Graph[string] {
	return p.graph
}

// Option configures construction via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds construction parameters.
type Options struct {
	// Logger receives construction summaries and Debug-level bridge decisions.
	Logger *zap.Logger

	// MaxTokenSize bounds a single token in bytes; longer tokens fail the read.
	MaxTokenSize int

	err error
}

// DefaultOptions returns Options with a no-op logger and DefaultMaxTokenSize.
func DefaultOptions() Options {
	return Options{
		Logger:       zap.NewNop(),
		MaxTokenSize: DefaultMaxTokenSize,
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxTokenSize sets the longest accepted corpus token in bytes.
//
//	n > 0: limit to n bytes
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxTokenSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxTokenSize must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxTokenSize = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
