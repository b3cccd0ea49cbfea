package named

import (
	"errors"
	"slices"
	"testing"

	"colorkit/colorspace"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		hex  string
	}{
		{"peru", "#cd853f"},
		{"PeRu", "#cd853f"},
		{"rebeccapurple", "#663399"},
		{"black", "#000000"},
		{"white", "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Lookup(tt.name)
			if !ok {
				t.Fatal("not found")
			}
			if got := c.ToHex().String(); got != tt.hex {
				t.Errorf("got %s, want %s", got, tt.hex)
			}
		})
	}

	if _, ok := Lookup("wow"); ok {
		t.Error("Lookup(wow) succeeded")
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("  Peru ")
	if err != nil {
		t.Fatal(err)
	}
	if c.Red() != 205 || c.Green() != 133 || c.Blue() != 63 {
		t.Errorf("got %v", c)
	}

	for _, text := range []string{"pe ru", "wow", "", "#cd853f"} {
		if _, err := Parse(text); !errors.Is(err, ErrUnknown) {
			t.Errorf("Parse(%q) error = %v", text, err)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 148 {
		t.Errorf("got %d names, want 148", len(names))
	}
	if !slices.IsSorted(names) {
		t.Error("names are not sorted")
	}

	names[0] = "changed"
	if Names()[0] != "aliceblue" {
		t.Error("Names exposes its backing array")
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		c    colorspace.Color
		want string
		ok   bool
	}{
		{mustRGB(205, 133, 63), "peru", true},
		{mustRGB(128, 128, 128), "gray", true},
		{mustRGB(0, 255, 255), "aqua", true},
		{mustRGB(1, 2, 3), "", false},
	}

	for _, tt := range tests {
		got, ok := Name(tt.c)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Name(%v) = %q, %v, want %q, %v", tt.c, got, ok, tt.want, tt.ok)
		}
	}
}

func mustRGB(r, g, b int) colorspace.RGB {
	c, err := colorspace.NewRGB(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}
