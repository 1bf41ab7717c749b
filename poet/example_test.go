package poet_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphpoet/poet"
)

// ExamplePoet_Poem builds a poet from an in-memory corpus and embellishes a sentence.
func ExamplePoet_Poem() {
	corpus := "To explore strange new worlds\nTo seek out new life and new civilizations"

	p, err := poet.New(strings.NewReader(corpus))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(p.Poem("Seek to explore new and exciting synergies!"))

	// Output:
	// Seek to explore strange new life and exciting synergies!
}

// ExamplePoet_Bridge shows the alphabetical tie-break between equal-weight paths.
func ExamplePoet_Bridge() {
	p, _ := poet.New(strings.NewReader("meet ours requirement meet mars requirement"))

	word, ok := p.Bridge("Meet", "Requirement")
	fmt.Println(word, ok)

	// Output:
	// mars true
}

// ExamplePoet_Graph inspects the word graph built from the Star Trek opening narration.
func ExamplePoet_Graph() {
	corpus := `Space: the final frontier. These are the voyages of the starship Enterprise.
To explore strange new worlds
To seek out new life and new civilizations
To boldly go where no man has gone before.`

	p, err := poet.New(strings.NewReader(corpus))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	g := p.Graph()
	fmt.Printf("vertices=%d edges=%d\n", g.VertexCount(), g.EdgeCount())
	fmt.Printf("targets of %q: %v\n", "new", g.Targets("new"))

	// Output:
	// vertices=28 edges=33
	// targets of "new": map[civilizations:1 life:1 worlds:1]
}
