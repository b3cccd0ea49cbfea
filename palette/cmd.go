package palette

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"colorkit/colorspace"
	"colorkit/distance"
	"colorkit/factory"
	"colorkit/named"
	"colorkit/parallel"
)

type OpParams struct {
	Palette string `help:"Palette name (${builtin_palettes}) or PAL file in RIFF format" default:"named"`
}

type CLICmd struct {
	Match struct {
		OpParams
		Metric string   `help:"Distance metric" enum:"cie76,cie94,cie94-textiles,ciede2000" default:"ciede2000"`
		Colors []string `arg:"" help:"Colors to look up"`
	} `cmd:"" help:"Find the closest palette entry for each color"`
	Export struct {
		OpParams
		Out string `arg:"" help:"Destination PAL file"`
	} `cmd:"" help:"Write a palette as PAL file in RIFF format"`
	List struct {
		OpParams
	} `cmd:"" help:"Print the entries of a palette"`

	Loaded Palette         `kong:"-"`
	Metric distance.Metric `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var conf *OpParams
	switch kctx.Selected().Name {
	case "match":
		conf = &c.Match.OpParams
		m, err := distance.ParseMetric(c.Match.Metric)
		if err != nil {
			return err
		}
		c.Metric = m
	case "export":
		conf = &c.Export.OpParams
	case "list":
		conf = &c.List.OpParams
	default:
		return nil
	}

	pal, err := Load(conf.Palette)
	if err != nil {
		return err
	}
	c.Loaded = pal

	return nil
}

func (c *CLICmd) Run(kctx *kong.Context, worker parallel.WorkerFunc) error {
	switch kctx.Selected().Name {
	case "match":
		return c.match(os.Stdout, worker)
	case "export":
		return c.export(c.Export.Out)
	case "list":
		return c.list(os.Stdout)
	}
	return fmt.Errorf("unsupported operation")
}

type matchResult struct {
	text  string
	entry colorspace.RGB
	dist  float64
	err   error
}

func (c *CLICmd) match(w io.Writer, worker parallel.WorkerFunc) error {
	lab := NewLab(c.Loaded, c.Metric)

	results := parallel.Map(worker, c.Match.Colors, func(text string) matchResult {
		col, err := factory.FromString(text)
		if err != nil {
			return matchResult{text: text, err: err}
		}
		entry := c.Loaded[lab.Index(col)]
		return matchResult{text: text, entry: entry, dist: distance.Between(col, entry, c.Metric)}
	})

	var errCount int
	for _, res := range results {
		if res.err != nil {
			errCount++
			slog.Error("could not match color", "color", res.text, "error", res.err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4f\n", res.text, res.entry.ToHex(), entryName(res.entry), res.dist)
	}

	if errCount > 0 {
		return fmt.Errorf("error matching %d colors", errCount)
	}
	return nil
}

func (c *CLICmd) list(w io.Writer) error {
	for i, entry := range c.Loaded {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, entry.ToHex(), entry, entryName(entry)); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLICmd) export(dest string) (err error) {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("could not create palette file %q: %w", dest, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close palette file %q: %w", dest, closeErr)
		}
	}()

	n, err := WriteRIFF(f, c.Loaded)
	if err != nil {
		return fmt.Errorf("could not write palette file %q: %w", dest, err)
	}

	slog.Info("exported palette", "file", dest, "colors", len(c.Loaded), "bytes", n)
	return nil
}

func entryName(c colorspace.RGB) string {
	if name, ok := named.Name(c); ok {
		return name
	}
	return "-"
}
