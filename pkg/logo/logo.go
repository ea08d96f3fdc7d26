// Package logo holds the vendor ASCII art catalog. Art is stored with
// $C1..$C7 placeholder tokens marking color changes; Lookup substitutes
// them with the vendor palette through fatih/color, so NO_COLOR and
// non-terminal output are handled transparently.
package logo

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// Logo is a colorized vendor logo. Lines are right-padded to a uniform
// printable width so they can be placed in the left column of a
// side-by-side layout.
type Logo struct {
	Lines []string
	Width int
}

// Vendors lists the accepted logo override tokens.
func Vendors() []string {
	return []string{"amd", "intel", "arm", "nvidia", "powerpc", "apple"}
}

// Lookup returns the logo for a vendor key, or ok == false when no
// logo is available for it. Keys are matched case-insensitively and
// accept both the canonical vendor keys and the raw x86 vendor id
// strings.
func Lookup(vendorKey string) (*Logo, bool) {
	var (
		art     string
		palette []*color.Color
	)
	switch strings.ToLower(vendorKey) {
	case "amd", "authenticamd":
		art = asciiAMD
		palette = paletteOf(color.FgHiWhite, color.FgHiRed)
	case "intel", "genuineintel":
		art = asciiIntel
		palette = paletteOf(color.FgHiCyan)
	case "arm":
		art = asciiARM
		palette = paletteOf(color.FgHiCyan)
	case "nvidia":
		art = asciiNVIDIA
		palette = paletteOf(color.FgHiGreen, color.FgHiWhite)
	case "powerpc":
		art = asciiPowerPC
		palette = paletteOf(color.FgHiYellow)
	case "apple":
		art = asciiApple
		palette = paletteOf(color.FgHiRed, color.FgHiYellow, color.FgHiGreen,
			color.FgHiCyan, color.FgHiBlue, color.FgHiMagenta, color.FgHiWhite)
	default:
		return nil, false
	}
	return build(art, palette), true
}

func paletteOf(attrs ...color.Attribute) []*color.Color {
	palette := make([]*color.Color, len(attrs))
	for i, attr := range attrs {
		palette[i] = color.New(attr)
	}
	return palette
}

var colorToken = regexp.MustCompile(`\$C([1-9])`)

// build substitutes the color tokens and pads every line to the width
// of the widest one. A color stays active across lines until the next
// token, matching how the raw art is drawn.
func build(art string, palette []*color.Color) *Logo {
	rawLines := strings.Split(strings.TrimRight(art, "\n"), "\n")

	width := 0
	for _, line := range rawLines {
		if w := visibleWidth(line); w > width {
			width = w
		}
	}

	logo := &Logo{Width: width}
	var current *color.Color
	for _, line := range rawLines {
		var b strings.Builder
		rest := line
		for {
			loc := colorToken.FindStringSubmatchIndex(rest)
			if loc == nil {
				b.WriteString(paint(current, rest))
				break
			}
			b.WriteString(paint(current, rest[:loc[0]]))
			idx := int(rest[loc[2]] - '1')
			if idx < len(palette) {
				current = palette[idx]
			}
			rest = rest[loc[1]:]
		}
		if pad := width - visibleWidth(line); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		logo.Lines = append(logo.Lines, b.String())
	}
	return logo
}

func paint(c *color.Color, s string) string {
	if s == "" {
		return ""
	}
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// visibleWidth is the printable rune count of a raw art line, with
// color tokens stripped.
func visibleWidth(line string) int {
	return len([]rune(colorToken.ReplaceAllString(line, "")))
}
