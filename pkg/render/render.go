// Package render formats a CPU record as terminal output, either
// beside a vendor logo or as a plain one-fact-per-line report.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rockenman1234/gocpufetch/pkg/cpuinfo"
	"github.com/rockenman1234/gocpufetch/pkg/logo"
	"golang.org/x/term"
)

const (
	columnSep     = "   "
	fallbackWidth = 100
	minWrapWidth  = 20
	flagsLabel    = "Flags: "
)

// TerminalWidth returns the column budget for the current stdout,
// falling back to a fixed width when stdout is not a terminal.
func TerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return fallbackWidth
}

// WithLogo writes the record beside the logo, one row per line pair.
// The shorter column is padded, and the flag list wraps within the
// space right of the logo.
func WithLogo(w io.Writer, info *cpuinfo.Info, lg *logo.Logo, width int) {
	lines := infoLines(info)
	lines = append(lines, wrapFlags(info.Flags, width-lg.Width-len(columnSep))...)

	blank := strings.Repeat(" ", lg.Width)
	rows := max(len(lg.Lines), len(lines))
	for i := 0; i < rows; i++ {
		left := blank
		if i < len(lg.Lines) {
			left = lg.Lines[i]
		}
		right := ""
		if i < len(lines) {
			right = lines[i]
		}
		fmt.Fprintf(w, "%s%s%s\n", left, columnSep, strings.TrimRight(right, " "))
	}
}

// Plain writes the record without a logo, one fact per line.
func Plain(w io.Writer, info *cpuinfo.Info, width int) {
	lines := infoLines(info)
	lines = append(lines, wrapFlags(info.Flags, width)...)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

func infoLines(info *cpuinfo.Info) []string {
	lines := []string{
		"Name: " + orUnknown(info.ModelName),
	}
	if info.Architecture != "" {
		lines = append(lines, "Architecture: "+info.Architecture)
	}
	if info.ByteOrder != cpuinfo.ByteOrderUnknown {
		lines = append(lines, "Byte Order: "+info.ByteOrder.String())
	}
	lines = append(lines,
		"Vendor: "+orUnknown(info.VendorKey),
		fmt.Sprintf("Cores: %d cores (%d threads)", info.PhysicalCores, info.LogicalCores),
	)

	if info.FrequencyGHz != nil {
		lines = append(lines, fmt.Sprintf("Max Frequency: %.3f GHz", *info.FrequencyGHz))
	} else {
		lines = append(lines, "Max Frequency: Unknown")
	}

	for _, key := range []cpuinfo.CacheKey{
		{Level: 1, Type: cpuinfo.CacheInstruction},
		{Level: 1, Type: cpuinfo.CacheData},
		{Level: 2, Type: cpuinfo.CacheUnified},
		{Level: 3, Type: cpuinfo.CacheUnified},
	} {
		label := key.String() + " Size: "
		if size, ok := info.Caches[key]; ok {
			lines = append(lines, fmt.Sprintf("%s%dKB (%dKB Total)", label, size.PerUnitKB, size.TotalKB))
		} else {
			lines = append(lines, label+"Unknown")
		}
	}
	return lines
}

// wrapFlags renders the flag list as comma-separated lines within the
// given column budget, continuation lines indented to align with the
// label.
func wrapFlags(flags []string, width int) []string {
	if len(flags) == 0 {
		return nil
	}
	if width < minWrapWidth {
		width = minWrapWidth
	}

	indent := strings.Repeat(" ", len(flagsLabel))
	var lines []string
	current := flagsLabel
	for _, flag := range flags {
		switch {
		case current == flagsLabel || current == indent:
			current += flag
		case len(current)+len(flag)+2 > width:
			lines = append(lines, current)
			current = indent + flag
		default:
			current += ", " + flag
		}
	}
	if strings.TrimSpace(current) != "" {
		lines = append(lines, current)
	}
	return lines
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
