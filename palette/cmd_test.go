package palette

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"colorkit/distance"
	"colorkit/parallel"
)

func TestMatchCmd(t *testing.T) {
	c := &CLICmd{Loaded: VGA16(), Metric: distance.MetricCIE76}
	c.Match.Colors = []string{"#000001", "peru", "#fe5656"}

	pool := parallel.Start(2)
	defer pool.Wait(true)

	var buf bytes.Buffer
	if err := c.match(&buf, pool.Do); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{"#000001\t#000000\tblack\t", "peru\t#aa5500\t-\t", "#fe5656\t#ff5555\t-\t"}
	if len(lines) != len(want) {
		t.Fatalf("got %q", buf.String())
	}
	for i, prefix := range want {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}

	c.Match.Colors = []string{"#000", "nope"}
	if err := c.match(&bytes.Buffer{}, pool.Do); err == nil {
		t.Error("match accepted an unknown color")
	}
}

func TestListCmd(t *testing.T) {
	c := &CLICmd{Loaded: Palette{rgb(0x000000), rgb(0x123456)}}

	var buf bytes.Buffer
	if err := c.list(&buf); err != nil {
		t.Fatal(err)
	}

	want := "0\t#000000\trgb(0,0,0)\tblack\n1\t#123456\trgb(18,52,86)\t-\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("list mismatch (-want +got):\n%s", d)
	}
}

func TestExportCmd(t *testing.T) {
	c := &CLICmd{Loaded: FromNamed()}
	dest := filepath.Join(t.TempDir(), "named.pal")

	if err := c.export(dest); err != nil {
		t.Fatal(err)
	}

	got, err := Load(dest)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(FromNamed(), got, allowRGB); d != "" {
		t.Errorf("exported palette mismatch (-want +got):\n%s", d)
	}
}
