// Package progressbar implements functionality of printing a progress
// bar to a terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Bar implements a progress bar that must be manually managed. That
// is, the Display() function must be called whenever an updated
// progress bar should be printed.
//
// Bar does not use concurrency.
type Bar struct {
	out             io.Writer
	width           float64
	maxProgress     float64
	currentProgress float64
	bar             strings.Builder
	startTime       time.Time
}

// NewBar returns a new Bar which is width characters wide, reaches 100%
// after max calls to Increment, and is displayed on out
func NewBar(out io.Writer, width, max int) *Bar {
	if max <= 0 {
		max = 1
	}
	return &Bar{
		out:         out,
		width:       float64(width),
		maxProgress: float64(max),
		startTime:   time.Now(),
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *Bar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// Fraction returns the fraction of progress made so far
func (p *Bar) Fraction() float64 {
	return p.currentProgress / p.maxProgress
}

// String returns the progress bar without the elapsed time
func (p *Bar) String() string {
	p.bar.Reset()
	p.bar.WriteString("|")

	currentProg := p.Fraction() * p.width
	for i := 0.0; i < currentProg; i++ {
		p.bar.WriteString("█")
	}
	for i := currentProg; i < p.width; i++ {
		p.bar.WriteString(" ")
	}
	fmt.Fprintf(&p.bar, "| [%.2f%%", p.Fraction()*100)

	return p.bar.String() + "]"
}

// Display overwrites the current terminal line with the progress bar
func (p *Bar) Display() {
	line := strings.TrimSuffix(p.String(), "]")
	fmt.Fprintf(p.out, "\n\033[1A\033[K%v | elapsed: %v]", line,
		time.Since(p.startTime).Truncate(time.Second))
}

// Finish displays the progress bar a last time and ends its line
func (p *Bar) Finish() {
	p.Display()
	fmt.Fprintln(p.out)
}
