package grid

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Golden(t *testing.T) {
	gold := goldie.New(t)

	empty, err := New(make([]uint8, Cells))
	require.NoError(t, err)
	gold.Assert(t, "empty", []byte(empty.Render()))

	gold.Assert(t, "demo_puzzle", []byte(MustParse(demoPuzzle).Render()))
	gold.Assert(t, "demo_solution", []byte(MustParse(demoSolution).Render()))
}

func TestRender_Shape(t *testing.T) {
	out := MustParse(demoPuzzle).Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, RenderedLines)
	for _, ln := range lines {
		assert.Len(t, ln, 25)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRenderWith_DefaultFormatterMatchesRender(t *testing.T) {
	g := MustParse(demoPuzzle)
	plain := g.RenderWith(func(r, c int, v uint8) string {
		if v == 0 {
			return ". "
		}
		return string([]byte{'0' + v, ' '})
	})
	assert.Equal(t, g.Render(), plain)
}

func TestRenderWith_FormatterControlsCellsOnly(t *testing.T) {
	g := MustParse(demoPuzzle)
	var seen int
	marked := g.RenderWith(func(r, c int, v uint8) string {
		seen++
		if v == 0 {
			return "_ "
		}
		return "# "
	})
	assert.Equal(t, Cells, seen)

	// Borders and separators are identical to the plain rendering; only the
	// cell characters differ.
	plainLines := strings.Split(g.Render(), "\n")
	markedLines := strings.Split(marked, "\n")
	require.Len(t, markedLines, len(plainLines))
	for i := range markedLines {
		assert.Len(t, markedLines[i], len(plainLines[i]))
		for j, r := range markedLines[i] {
			if r == '+' || r == '-' || r == '|' {
				assert.Equal(t, plainLines[i][j], byte(r))
			}
		}
	}
}

func TestRender_PureFunction(t *testing.T) {
	g := MustParse(demoPuzzle)
	before := g.Flat()
	_ = g.Render()
	assert.Equal(t, before, g.Flat())
	assert.Equal(t, g.Render(), g.String())
}
