package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphpoet/internal/config"
	"github.com/katalvlaran/graphpoet/poet"
)

func writeCorpus(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))

	return path
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.Execute()

	return out.String(), err
}

func TestPoemCommand_Args(t *testing.T) {
	corpus := writeCorpus(t, "To explore strange new worlds\nTo seek out new life and new civilizations\n")

	out, err := run(t, "", "poem", "--corpus", corpus, "Seek", "to", "explore", "new", "and", "exciting", "synergies!")
	require.NoError(t, err)
	require.Equal(t, "Seek to explore strange new life and exciting synergies!\n", out)
}

func TestPoemCommand_Stdin(t *testing.T) {
	corpus := writeCorpus(t, "a mars b\na ours b\n")

	out, err := run(t, "a b\n\nA   B\n", "poem", "--corpus", corpus)
	require.NoError(t, err)
	require.Equal(t, "a mars b\n\nA mars B\n", out)
}

func TestPoemCommand_MissingCorpus(t *testing.T) {
	_, err := run(t, "", "poem", "--corpus", filepath.Join(t.TempDir(), "nope.txt"), "a", "b")
	require.ErrorIs(t, err, poet.ErrCorpusRead)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestGraphCommand(t *testing.T) {
	corpus := writeCorpus(t, "a a a")

	out, err := run(t, "", "graph", "--corpus", corpus)
	require.NoError(t, err)
	require.Contains(t, out, "vertices: 1")
	require.Contains(t, out, "- word: a\n    targets:\n      - word: a\n        weight: 2\n")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	require.Equal(t, "graphpoet dev\n", out)
}

func TestPoemLines(t *testing.T) {
	p, err := poet.New(strings.NewReader("we are connecting the bridge words"))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, poemLines(p, strings.NewReader("We are the words\nsolo"), &out, 64))
	require.Equal(t, "We are connecting the bridge words\nsolo\n", out.String())
}

func TestPoemLines_LongLineKeepsEarlierPoems(t *testing.T) {
	p, err := poet.New(strings.NewReader("we are connecting the bridge words"))
	require.NoError(t, err)

	var out bytes.Buffer
	in := "We are the words\n" + strings.Repeat("x", 64) + "\nnever reached\n"
	err = poemLines(p, strings.NewReader(in), &out, 32)
	require.ErrorIs(t, err, bufio.ErrTooLong)
	require.Equal(t, "We are connecting the bridge words\n", out.String())
}

func TestPoemLines_AboveDefaultScannerCap(t *testing.T) {
	p, err := poet.New(strings.NewReader("a mars b"))
	require.NoError(t, err)

	// 100 KiB of padding is past bufio.MaxScanTokenSize.
	long := strings.Repeat("z ", 50*1024) + "a b"
	var out bytes.Buffer
	require.NoError(t, poemLines(p, strings.NewReader(long+"\n"), &out, config.DefaultMaxSentenceSize))
	require.True(t, strings.HasSuffix(out.String(), "z a mars b\n"))
}

func TestPoemCommand_SentenceSizeFlag(t *testing.T) {
	corpus := writeCorpus(t, "a mars b\n")

	out, err := run(t, "a b\n"+strings.Repeat("y", 40)+"\n", "poem", "--corpus", corpus, "--max-sentence-size", "16")
	require.ErrorIs(t, err, bufio.ErrTooLong)
	require.Equal(t, "a mars b\n", out)

	// reset for later tests sharing rootCmd flags
	_, err = run(t, "", "poem", "--corpus", corpus, "--max-sentence-size", strconv.Itoa(config.DefaultMaxSentenceSize), "a")
	require.NoError(t, err)
}
