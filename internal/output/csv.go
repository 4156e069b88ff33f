package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVFormatter writes one row per year. Values keep full precision.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	series := result.Trajectory.Series()
	header := []string{"Year"}
	for _, s := range series {
		header = append(header, s.Name)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i, year := range result.Trajectory.Years {
		row := []string{strconv.Itoa(year)}
		for _, s := range series {
			row = append(row, decimal.NewFromFloat(s.Values[i]).String())
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
