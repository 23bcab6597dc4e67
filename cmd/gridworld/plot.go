package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gridenv/experiment/trackers"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

// series is a named sequence of per-episode values
type series struct {
	name   string
	values []float64
}

// smooth returns the moving average of values over a trailing window
func smooth(values []float64, window int) []float64 {
	if window <= 1 {
		return values
	}

	smoothed := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		smoothed[i] = floats.Sum(values[start:i+1]) / float64(i+1-start)
	}
	return smoothed
}

// Plot writes an HTML line chart of the argument series, smoothed over
// window episodes
func Plot(out io.Writer, title string, window int, s ...series) error {
	if len(s) == 0 {
		return fmt.Errorf("plot: nothing to plot")
	}

	episodes := 0
	for _, data := range s {
		if len(data.values) > episodes {
			episodes = len(data.values)
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	var xAxis []string
	for i := 0; i < episodes; i++ {
		xAxis = append(xAxis, fmt.Sprintf("%d", i))
	}

	line = line.SetXAxis(xAxis)
	for _, data := range s {
		items := make([]opts.LineData, 0, len(data.values))
		for _, v := range smooth(data.values, window) {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(data.name, items)
	}

	page := components.NewPage()
	page.AddCharts(
		line,
	)
	if err := page.Render(out); err != nil {
		return errors.Wrap(err, "plot")
	}
	return nil
}

func PlotCommand() *cobra.Command {
	var outFile, title string
	var window int

	cmd := &cobra.Command{
		Use:   "plot FILE...",
		Short: "Plot episodic data saved by run --returns or --lengths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s []series
			for _, file := range args {
				data, err := trackers.LoadData(file)
				if err != nil {
					return err
				}
				name := strings.TrimSuffix(filepath.Base(file),
					filepath.Ext(file))
				s = append(s, series{name, data})
			}

			f, err := os.Create(outFile)
			if err != nil {
				return errors.Wrap(err, "plot: could not create chart file")
			}
			defer f.Close()

			return Plot(f, title, window, s...)
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "chart.html",
		"HTML file to write the chart to")
	cmd.Flags().StringVar(&title, "title", "Episodic return", "chart title")
	cmd.Flags().IntVar(&window, "window", 1,
		"number of episodes to average over")

	return cmd
}
