package output

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/sys/unix"

	"github.com/ryanthedev/cycle-cli/internal/catalog"
	"github.com/ryanthedev/cycle-cli/internal/state"
	"github.com/ryanthedev/cycle-cli/internal/types"
)

// PrintProcessesTable prints running processes in a table format
func PrintProcessesTable(procs []types.Process) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("PID", "Name", "Frontmost")

	for _, p := range procs {
		front := ""
		if p.Frontmost {
			front = "*"
		}
		table.Append(strconv.Itoa(p.PID), truncate(p.Name, 40), front)
	}

	table.Render()
}

// PrintMonitorsTable prints the geometry catalog in a table format
func PrintMonitorsTable(monitors []catalog.Monitor) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Resolution", "Origin", "H-Presets", "V-Presets")

	for _, m := range monitors {
		table.Append(
			m.Name,
			fmt.Sprintf("%.0fx%.0f", m.Width, m.Height),
			fmt.Sprintf("(%.0f, %.0f)", m.OriginX, m.OriginY),
			strconv.Itoa(len(m.Horizontal)),
			strconv.Itoa(len(m.Vertical)),
		)
	}

	table.Render()
}

// PrintSequencesTable prints the ratio sequences per monitor and axis class
func PrintSequencesTable(monitors []catalog.Monitor) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Monitor", "Class", "Ratios")

	// Ratio columns get whatever width the terminal leaves after the
	// fixed columns
	maxRatios := terminalWidth() - 30
	if maxRatios < 20 {
		maxRatios = 20
	}

	for _, m := range monitors {
		table.Append(m.Name, "horizontal", truncate(formatRatios(m.Horizontal), maxRatios))
		table.Append(m.Name, "vertical", truncate(formatRatios(m.Vertical), maxRatios))
	}

	table.Render()
}

// PrintStateTable prints a persisted cycle state record
func PrintStateTable(st *state.CycleState) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	table.Append("Index", strconv.Itoa(st.Index))
	table.Append("Timestamp", strconv.FormatFloat(st.Timestamp, 'f', 3, 64))
	table.Append("Alignment", st.Alignment.String())

	name := st.CachedProcessName
	if name == "" {
		name = "-"
	}
	table.Append("Cached process", name)

	geom := "-"
	if g := st.CachedGeometry; g != nil {
		geom = fmt.Sprintf("(%.1f, %.1f) %.1fx%.1f", g.X, g.Y, g.Width, g.Height)
	}
	table.Append("Cached geometry", geom)

	table.Render()
}

// formatRatios renders a ratio sequence like "0.5 -> 0.67 -> 0.33"
func formatRatios(ratios []float64) string {
	parts := make([]string, len(ratios))
	for i, r := range ratios {
		parts[i] = strconv.FormatFloat(r, 'g', -1, 64)
	}
	return strings.Join(parts, " -> ")
}

// terminalWidth returns the current terminal width
func terminalWidth() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		// Default to 80 if we can't detect
		return 80
	}
	return int(ws.Col)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
