// Package rxnprogress wires the extent model and the view package into a
// command-line tool: one-shot evaluation or an interactive session.
package rxnprogress

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/rxnprogress/extent"
	"github.com/katalvlaran/rxnprogress/internal/platform/config"
)

// Config holds the command configuration. Environment variables are read
// first; flags override them.
type Config struct {
	MaxMoles     float64   `env:"RXNPROGRESS_MAX_MOLES"    envDefault:"10000000"`
	Mode         string    `env:"RXNPROGRESS_MODE"         envDefault:"moles"`
	Coefficients []float64 `env:"RXNPROGRESS_COEFFICIENTS" envDefault:"-2,-1,0,2,0,0" envSeparator:","`
	Initial      []float64 `env:"RXNPROGRESS_INITIAL"      envDefault:"1,1,0,0,0,0"   envSeparator:","`
	MolarMasses  []float64 `env:"RXNPROGRESS_MOLAR_MASSES" envDefault:"1,1,1,1,1,1"   envSeparator:","`
	Percent      float64   `env:"RXNPROGRESS_PERCENT"`
	Extent       string    `env:"RXNPROGRESS_EXTENT"`
	BarChart     string    `env:"RXNPROGRESS_BAR_CHART"`
	LineGraph    string    `env:"RXNPROGRESS_LINE_GRAPH"`
	Format       string    `env:"RXNPROGRESS_FORMAT"       envDefault:"png"`
	Locale       string    `env:"RXNPROGRESS_LOCALE"       envDefault:"en"`
	Interactive  bool      `env:"RXNPROGRESS_INTERACTIVE"`
	Verbose      bool      `env:"RXNPROGRESS_VERBOSE"`
}

// ParseConfig parses env then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.Float64Var(&cfg.MaxMoles, "max-moles", cfg.MaxMoles, "upper bound for any amount, in moles")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "input/display mode: moles or mass")
	fs.Var((*floatList)(&cfg.Coefficients), "coefficients", "six signed coefficients A,B,C,X,Y,Z")
	fs.Var((*floatList)(&cfg.Initial), "initial", "six initial amounts A,B,C,X,Y,Z in mode units")
	fs.Var((*floatList)(&cfg.MolarMasses), "molar-masses", "six molar masses A,B,C,X,Y,Z in g/mol")
	fs.Float64Var(&cfg.Percent, "percent", cfg.Percent, "percent complete, 0-100")
	fs.StringVar(&cfg.Extent, "extent", cfg.Extent, "extent of reaction in moles (overrides -percent)")
	fs.StringVar(&cfg.BarChart, "bar-chart", cfg.BarChart, "write the bar chart to this file")
	fs.StringVar(&cfg.LineGraph, "line-graph", cfg.LineGraph, "write the line graph to this file")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "chart format: png or svg")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for number formatting")
	fs.BoolVar(&cfg.Interactive, "i", cfg.Interactive, "read commands from stdin")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// floatList is a flag.Value for comma-separated numbers.
type floatList []float64

func (l *floatList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strings.Join(parts, ",")
}

func (l *floatList) Set(s string) error {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return fmt.Errorf("%q is not a number", f)
		}
		out = append(out, v)
	}
	*l = out

	return nil
}

// sixOf converts a config list into the fixed slot array.
func sixOf(name string, vals []float64) ([extent.SlotCount]float64, error) {
	var out [extent.SlotCount]float64
	if len(vals) != extent.SlotCount {
		return out, fmt.Errorf("%s: want %d values (A,B,C,X,Y,Z), got %d", name, extent.SlotCount, len(vals))
	}
	copy(out[:], vals)

	return out, nil
}
