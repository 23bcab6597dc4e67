// Package render implements renderers which draw gridworld Scenes
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gridenv/environment/gridworld"
)

const DefaultWindowSize int = 512

// Image renders Scenes as square RGBA frames. 3D Scenes are drawn as
// the slice of the grid which contains the agent.
type Image struct {
	windowSize int
	lineWidth  float64

	background     color.Color
	gridColour     color.Color
	agentColour    color.Color
	targetColour   color.Color
	obstacleColour color.Color
}

// NewImage returns a new Image renderer drawing frames of windowSize
// pixels per side
func NewImage(windowSize int) (*Image, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("newImage: window size must be positive")
	}

	return &Image{
		windowSize:     windowSize,
		lineWidth:      3.0,
		background:     color.White,
		gridColour:     color.Black,
		agentColour:    color.RGBA{0, 0, 255, 255},
		targetColour:   color.RGBA{255, 0, 0, 255},
		obstacleColour: color.Black,
	}, nil
}

// Render draws the Scene
func (i *Image) Render(s gridworld.Scene) (image.Image, error) {
	if s.Size <= 0 {
		return nil, fmt.Errorf("render: cannot draw a grid of size %d",
			s.Size)
	}

	dc := gg.NewContext(i.windowSize, i.windowSize)
	dc.SetColor(i.background)
	dc.Clear()

	cell := float64(i.windowSize) / float64(s.Size)
	slice := s.Agent[2]

	// Target
	if s.Target[2] == slice {
		dc.DrawRectangle(cell*float64(s.Target[0]),
			cell*float64(s.Target[1]), cell, cell)
		dc.SetColor(i.targetColour)
		dc.Fill()
	}

	// Obstacles
	for _, o := range s.Obstacles {
		if o[2] != slice {
			continue
		}
		dc.DrawRectangle(cell*float64(o[0]), cell*float64(o[1]), cell, cell)
	}
	dc.SetColor(i.obstacleColour)
	dc.Fill()

	// Agent
	dc.DrawCircle(cell*(float64(s.Agent[0])+0.5),
		cell*(float64(s.Agent[1])+0.5), cell/3)
	dc.SetColor(i.agentColour)
	dc.Fill()

	// Gridlines
	for k := 0; k <= s.Size; k++ {
		pos := cell * float64(k)
		dc.DrawLine(0, pos, float64(i.windowSize), pos)
		dc.DrawLine(pos, 0, pos, float64(i.windowSize))
	}
	dc.SetColor(i.gridColour)
	dc.SetLineWidth(i.lineWidth)
	dc.Stroke()

	return dc.Image(), nil
}

// Close implements the gridworld.Renderer interface
func (i *Image) Close() error {
	return nil
}

// SavePNG writes a frame to a PNG file
func SavePNG(path string, frame image.Image) error {
	if frame == nil {
		return fmt.Errorf("savePNG: no frame to save")
	}
	if err := gg.SavePNG(path, frame); err != nil {
		return errors.Wrap(err, "savePNG")
	}
	return nil
}
