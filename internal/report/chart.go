package report

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// CategoryPieChart renders the expense breakdown as a PNG pie chart.
// When there is nothing to plot it renders a single gray "No Data"
// slice instead of failing. Slices are added in sorted category order
// so repeated renders of the same totals are identical.
func CategoryPieChart(totals map[string]float64) ([]byte, error) {
	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	values := make([]chart.Value, 0, len(totals))
	for _, c := range categories {
		// the renderer cannot place non-positive slices
		if totals[c] <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.2f)", c, totals[c]),
			Value: totals[c],
		})
	}

	if len(values) == 0 {
		values = []chart.Value{{
			Label: "No Data",
			Value: 1,
			Style: chart.Style{FillColor: drawing.ColorFromHex("9e9e9e")},
		}}
	}

	pie := chart.PieChart{
		Width:  480,
		Height: 480,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
