package util

import (
	"fmt"

	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/Mar-Ges/CityEnergyAnalyst/pkg/multiobjective/framework"
)

// PlotFronts creates a scatter plot of the non-dominated fronts of a
// selection step, one series per front, and renders it to an HTML file.
// Only 2-objective fronts can be plotted.
func PlotFronts(path, title string, fronts [][]framework.ObjectiveSpacePoint) error {
	if len(fronts) == 0 || len(fronts[0]) == 0 {
		return fmt.Errorf("no solutions to plot for %q", title)
	}

	if len(fronts[0][0]) != 2 {
		return fmt.Errorf("can only plot 2D objective spaces for %q", title)
	}

	// Create scatter chart
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "f1(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f2(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	for f, front := range fronts {
		points := make([]opts.ScatterData, len(front))
		symbol := "triangle"
		if f == 0 {
			symbol = "circle"
		}
		for i, p := range front {
			points[i] = opts.ScatterData{
				Value:      []float64{p[0], p[1]},
				Symbol:     symbol,
				SymbolSize: 10,
			}
		}
		scatter.AddSeries(fmt.Sprintf("Front %d", f), points)
	}
	scatter.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(false),
		}),
		charts.WithEmphasisOpts(opts.Emphasis{}),
	)

	// Create HTML file
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return scatter.Render(f)
}
