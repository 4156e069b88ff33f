package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/sustainsim/internal/tui/tuistyles"
)

// DataSeries represents a single line in a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart displays a simple line chart
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Labels     []string // X-axis labels
	Width      int
	Height     int
	ShowLegend bool
	YAxisLabel string
	XAxisLabel string

	// Baseline, when set, is drawn as a dotted rule and always kept in view
	Baseline *float64
}

const yAxisWidth = 10

// NewASCIIChart creates a new ASCII chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Series:     []*DataSeries{},
		Labels:     []string{},
		Width:      60,
		Height:     15,
		ShowLegend: true,
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{
		Name:   name,
		Points: points,
		Color:  color,
	})
	return c
}

// WithLabels sets the X-axis labels
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// WithAxisLabels sets axis labels
func (c *ASCIIChart) WithAxisLabels(xLabel, yLabel string) *ASCIIChart {
	c.XAxisLabel = xLabel
	c.YAxisLabel = yLabel
	return c
}

// WithBaseline draws a reference line at v, typically zero for the score
func (c *ASCIIChart) WithBaseline(v float64) *ASCIIChart {
	c.Baseline = &v
	return c
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if !c.hasPoints() {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder

	if c.Title != "" {
		content.WriteString(tuistyles.TitleStyle.Render(c.Title))
		content.WriteString("\n")
		if c.YAxisLabel != "" {
			content.WriteString(tuistyles.SubtitleStyle.Render(c.YAxisLabel))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}

	globalMin, globalMax := c.getGlobalMinMax()
	content.WriteString(c.renderGrid(globalMin, globalMax))

	if c.XAxisLabel != "" {
		content.WriteString("\n")
		content.WriteString(tuistyles.SubtitleStyle.Render(strings.Repeat(" ", yAxisWidth+3) + c.XAxisLabel))
	}

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

func (c *ASCIIChart) hasPoints() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return true
		}
	}
	return false
}

// getGlobalMinMax finds the padded value range across all series
func (c *ASCIIChart) getGlobalMinMax() (float64, float64) {
	globalMin := math.Inf(1)
	globalMax := math.Inf(-1)

	for _, series := range c.Series {
		for _, point := range series.Points {
			if math.IsNaN(point) || math.IsInf(point, 0) {
				continue
			}
			globalMin = math.Min(globalMin, point)
			globalMax = math.Max(globalMax, point)
		}
	}
	if c.Baseline != nil {
		globalMin = math.Min(globalMin, *c.Baseline)
		globalMax = math.Max(globalMax, *c.Baseline)
	}
	if math.IsInf(globalMin, 1) {
		return -1, 1
	}

	// A flat series still needs a non-empty range to map onto rows
	if globalMax == globalMin {
		pad := math.Max(math.Abs(globalMax)*0.1, 1)
		return globalMin - pad, globalMax + pad
	}

	padding := (globalMax - globalMin) * 0.1
	return globalMin - padding, globalMax + padding
}

func (c *ASCIIChart) rowFor(v, minVal, maxVal float64) int {
	return c.Height - 1 - int(math.Round((v-minVal)/(maxVal-minVal)*float64(c.Height-1)))
}

func columnFor(i, n, width int) int {
	if n <= 1 {
		return 0
	}
	return int(math.Round(float64(i) / float64(n-1) * float64(width-1)))
}

// renderGrid renders the chart grid with data points
func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	chartWidth := max(c.Width-yAxisWidth-3, 2)
	height := max(c.Height, 2)
	c.Height = height

	grid := make([][]rune, height)
	owner := make([][]int, height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		owner[i] = make([]int, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
			owner[i][j] = -1
		}
	}

	if c.Baseline != nil {
		y := c.rowFor(*c.Baseline, minVal, maxVal)
		if y >= 0 && y < height {
			for x := range grid[y] {
				grid[y][x] = '┈'
			}
		}
	}

	for seriesIdx, series := range c.Series {
		pointChar := c.getSeriesChar(seriesIdx)
		n := len(series.Points)
		prevX, prevY := 0, 0

		for i, point := range series.Points {
			if math.IsNaN(point) || math.IsInf(point, 0) {
				continue
			}
			x := columnFor(i, n, chartWidth)
			y := c.rowFor(point, minVal, maxVal)

			if i > 0 {
				c.drawLine(grid, owner, prevX, prevY, x, y, pointChar, seriesIdx)
			} else {
				plot(grid, owner, x, y, pointChar, seriesIdx)
			}
			prevX, prevY = x, y
		}
	}

	var output strings.Builder
	places := axisPlaces(maxVal - minVal)
	yAxisStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Width(yAxisWidth).
		Align(lipgloss.Right)

	for i, row := range grid {
		label := ""
		// Label every other row so dense charts stay readable
		if i%2 == 0 || i == height-1 {
			yValue := maxVal - (float64(i)/float64(height-1))*(maxVal-minVal)
			label = formatChartValue(yValue, places)
		}
		output.WriteString(yAxisStyle.Render(label))
		output.WriteString(" │ ")

		for x, r := range row {
			if idx := owner[i][x]; idx >= 0 {
				output.WriteString(lipgloss.NewStyle().Foreground(c.Series[idx].Color).Render(string(r)))
			} else {
				output.WriteRune(r)
			}
		}
		output.WriteString("\n")
	}

	output.WriteString(strings.Repeat(" ", yAxisWidth))
	output.WriteString(" └")
	output.WriteString(strings.Repeat("─", chartWidth+1))
	output.WriteString("\n")

	if len(c.Labels) > 0 {
		output.WriteString(c.renderXAxisLabels(chartWidth))
	}

	return output.String()
}

// getSeriesChar returns the character to use for a series
func (c *ASCIIChart) getSeriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

func plot(grid [][]rune, owner [][]int, x, y int, char rune, idx int) {
	if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
		grid[y][x] = char
		owner[y][x] = idx
	}
}

// drawLine draws a simple line between two points using Bresenham's algorithm
func (c *ASCIIChart) drawLine(grid [][]rune, owner [][]int, x0, y0, x1, y1 int, char rune, idx int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0

	for {
		plot(grid, owner, x, y, char, idx)
		if x == x1 && y == y1 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// renderXAxisLabels spreads up to five labels under their columns
func (c *ASCIIChart) renderXAxisLabels(chartWidth int) string {
	const maxLabels = 5
	n := len(c.Labels)

	line := []rune(strings.Repeat(" ", chartWidth+8))
	step := max((n-1)/(maxLabels-1), 1)

	next := 0
	for i := 0; i < n; i += step {
		if i+step >= n {
			i = n - 1
		}
		label := []rune(c.Labels[i])
		start := columnFor(i, n, chartWidth)
		if start < next {
			continue
		}
		for j, r := range label {
			if start+j < len(line) {
				line[start+j] = r
			}
		}
		next = start + len(label) + 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return strings.Repeat(" ", yAxisWidth+3) + labelStyle.Render(strings.TrimRight(string(line), " "))
}

// renderLegend renders the chart legend
func (c *ASCIIChart) renderLegend() string {
	var items []string

	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(c.getSeriesChar(i)))
		name := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(series.Name)
		items = append(items, fmt.Sprintf("%s %s", symbol, name))
	}

	legendStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return legendStyle.Render("Legend: " + strings.Join(items, " • "))
}

// axisPlaces picks how many decimals the axis needs for a value span
func axisPlaces(span float64) int32 {
	switch {
	case span < 1:
		return 3
	case span < 10:
		return 2
	case span < 100:
		return 1
	default:
		return 0
	}
}

// formatChartValue formats a value for display on the Y axis
func formatChartValue(value float64, places int32) string {
	d := decimal.NewFromFloat(value)
	if math.Abs(value) >= 10000 {
		return d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "k"
	}
	return d.StringFixed(places)
}

// abs returns absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
