package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphpoet/poet"
)

var poemCmd = &cobra.Command{
	Use:   "poem [sentence...]",
	Short: "Insert bridge words into a sentence",
	Long: `Poem joins its arguments into one sentence and prints it with bridge words
inserted. With no arguments every line of stdin is treated as a sentence and
one poem is printed per line. Stdin lines longer than --max-sentence-size bytes
(default 1 MiB) stop the command with an error after the earlier poems are
written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cfg, logger, err := loadPoet()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		if len(args) > 0 {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), p.Poem(strings.Join(args, " ")))
			return err
		}

		return poemLines(p, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.MaxSentenceSize)
	},
}

// poemLines writes one poem per input line; maxLine caps a line in bytes.
// Poems for lines read before a failure are flushed before the error returns.
func poemLines(p *poet.Poet, in io.Reader, out io.Writer, maxLine int) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, min(sentenceBufSize, maxLine)), maxLine)
	w := bufio.NewWriter(out)
	for sc.Scan() {
		if _, err := fmt.Fprintln(w, p.Poem(sc.Text())); err != nil {
			return err
		}
	}
	flushErr := w.Flush()
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading sentences: %w", err)
	}

	return flushErr
}

// sentenceBufSize is the stdin scanner's starting buffer.
const sentenceBufSize = 4 * 1024

func init() {
	rootCmd.AddCommand(poemCmd)
}
