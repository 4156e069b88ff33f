package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a simulation result into bytes
type Formatter interface {
	Name() string
	Format(result *domain.SimulationResult) ([]byte, error)
}

func formatters() []Formatter {
	return []Formatter{
		ConsoleFormatter{},
		CSVFormatter{},
		JSONFormatter{},
		YAMLFormatter{},
		ChartFormatter{Width: 72, Height: 14},
	}
}

// GetFormatterByName returns the formatter registered under name, or nil
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters() {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// AvailableFormatters lists formatter names in sorted order
func AvailableFormatters() []string {
	names := []string{}
	for _, f := range formatters() {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// WriteFormatted formats result with f and writes it to w
func WriteFormatted(w io.Writer, f Formatter, result *domain.SimulationResult) error {
	if result == nil {
		return fmt.Errorf("no result to format")
	}
	data, err := f.Format(result)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// FormatFixed rounds v half away from zero to places decimals
func FormatFixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
