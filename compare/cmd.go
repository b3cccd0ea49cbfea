package compare

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"colorkit/contrast"
	"colorkit/distance"
	"colorkit/factory"
)

type CLICmd struct {
	A       string            `arg:"" help:"Reference color"`
	B       string            `arg:"" help:"Color to compare with the reference"`
	Metric  string            `help:"Distance metric" enum:"all,cie76,cie94,cie94-textiles,ciede2000" default:"all"`
	Metrics []distance.Metric `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Metric == "all" || c.Metric == "" {
		c.Metrics = distance.Metrics
		return nil
	}

	m, err := distance.ParseMetric(c.Metric)
	if err != nil {
		return err
	}
	c.Metrics = []distance.Metric{m}
	return nil
}

func (c *CLICmd) Run() error {
	return c.report(os.Stdout)
}

func (c *CLICmd) report(w io.Writer) error {
	a, err := factory.FromString(c.A)
	if err != nil {
		return fmt.Errorf("invalid reference color: %w", err)
	}
	b, err := factory.FromString(c.B)
	if err != nil {
		return fmt.Errorf("invalid color: %w", err)
	}

	fmt.Fprintf(w, "%s -> %s\n", a, b)
	for _, m := range c.Metrics {
		fmt.Fprintf(w, "  %-15s %.4f\n", m, distance.Between(a, b, m))
	}
	fmt.Fprintf(w, "  %-15s %s:1\n", "contrast", strconv.FormatFloat(contrast.Ratio(a, b), 'f', -1, 64))
	fmt.Fprintf(w, "  %-15s %s on %s, %s on %s\n", "foreground", contrast.Foreground(a), a.ToHex(),
		contrast.Foreground(b), b.ToHex())

	return nil
}
