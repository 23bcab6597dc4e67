package render

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gridenv/environment/gridworld"
)

// Text renders Scenes as a coloured grid of characters written to an
// io.Writer. The agent is drawn as A, the target as T, and obstacles as
// #. Text renderers produce no image.
type Text struct {
	out    io.Writer
	colour aurora.Aurora
}

// NewText returns a new Text renderer writing to out. If colour is
// false, no terminal escape codes are written.
func NewText(out io.Writer, colour bool) *Text {
	return &Text{out: out, colour: aurora.NewAurora(colour)}
}

// Render writes the Scene to the renderer's writer
func (t *Text) Render(s gridworld.Scene) (image.Image, error) {
	if _, err := io.WriteString(t.out, t.Grid(s)); err != nil {
		return nil, errors.Wrap(err, "render")
	}
	return nil, nil
}

// Grid returns the text drawing of a Scene. 3D Scenes are drawn as the
// slice of the grid which contains the agent.
func (t *Text) Grid(s gridworld.Scene) string {
	var b strings.Builder
	slice := s.Agent[2]
	if s.Dims == 3 {
		fmt.Fprintf(&b, "z = %d\n", slice)
	}

	border := "+" + strings.Repeat("-", 2*s.Size+1) + "+\n"
	b.WriteString(border)
	for y := 0; y < s.Size; y++ {
		b.WriteString("| ")
		for x := 0; x < s.Size; x++ {
			p := gridworld.NewPosition(x, y, slice)
			switch {
			case p == s.Agent:
				b.WriteString(t.colour.Blue("A").Bold().String())
			case p == s.Target:
				b.WriteString(t.colour.Red("T").Bold().String())
			case s.IsObstacle(p):
				b.WriteString(t.colour.White("#").String())
			default:
				b.WriteString(t.colour.Gray(12, ".").String())
			}
			b.WriteString(" ")
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	fmt.Fprintf(&b, "Step %d / %d\n", s.Steps, s.MaxSteps)

	return b.String()
}

// Close implements the gridworld.Renderer interface
func (t *Text) Close() error {
	return nil
}
