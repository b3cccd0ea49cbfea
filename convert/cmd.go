package convert

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"colorkit/colorspace"
	"colorkit/factory"
	"colorkit/named"
	"colorkit/parallel"
)

type CLICmd struct {
	Colors []string           `arg:"" optional:"" help:"Colors in any supported notation or CSS names. Read one per line from stdin when omitted"`
	To     []string           `help:"Spaces to print (rgb, rgba, hex, hsl, hsla, hsb, cmyk, CIELab, xyz)" default:"hex,rgb,rgba,hsl,hsla,hsb,cmyk,CIELab,xyz"`
	Swatch string             `help:"Print a truecolor swatch next to each color" enum:"auto,always,never" default:"auto"`
	Spaces []colorspace.Space `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	c.Spaces = c.Spaces[:0]
	for _, name := range c.To {
		s, err := colorspace.ParseSpace(name)
		if err != nil {
			return fmt.Errorf("invalid target space: %w", err)
		}
		c.Spaces = append(c.Spaces, s)
	}

	if len(c.Spaces) == 0 {
		return fmt.Errorf("no target spaces given")
	}

	return nil
}

type result struct {
	text string
	out  string
	err  error
}

func (c *CLICmd) Run(worker parallel.WorkerFunc) error {
	inputs := c.Colors
	if len(inputs) == 0 {
		var err error
		if inputs, err = readLines(os.Stdin); err != nil {
			return fmt.Errorf("could not read colors from stdin: %w", err)
		}
	}

	swatch := c.Swatch == "always" || (c.Swatch == "auto" && term.IsTerminal(int(os.Stdout.Fd())))

	results := parallel.Map(worker, inputs, func(text string) result {
		out, err := c.format(text, swatch)
		return result{text: text, out: out, err: err}
	})

	var errCount int
	for _, res := range results {
		if res.err != nil {
			errCount++
			slog.Error("could not convert color", "color", res.text, "error", res.err)
			continue
		}
		fmt.Print(res.out)
	}

	slog.Debug("stats", "converted", len(results)-errCount, "errors", errCount, "total", len(results))

	if errCount > 0 {
		return fmt.Errorf("error converting %d colors", errCount)
	}
	return nil
}

func (c *CLICmd) format(text string, swatch bool) (string, error) {
	col, err := factory.FromString(text)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if swatch {
		sb.WriteString(Swatch(col))
		sb.WriteByte(' ')
	}
	sb.WriteString(strings.TrimSpace(text))
	if name, ok := named.Name(col); ok {
		fmt.Fprintf(&sb, " (%s)", name)
	}
	sb.WriteByte('\n')

	for _, s := range c.Spaces {
		fmt.Fprintf(&sb, "  %-7s %s\n", s, colorspace.Convert(col, s))
	}

	return sb.String(), nil
}

// Swatch returns a few blanks on a 24-bit ANSI background of c.
func Swatch(c colorspace.Color) string {
	rgb := c.ToRGB()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m", rgb.Red(), rgb.Green(), rgb.Blue())
}

func readLines(r io.Reader) ([]string, error) {
	var res []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" && !strings.HasPrefix(line, "//") {
			res = append(res, line)
		}
	}

	return res, scanner.Err()
}
