package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ryanthedev/cycle-cli/internal/applier"
	"github.com/ryanthedev/cycle-cli/internal/apps"
	"github.com/ryanthedev/cycle-cli/internal/client"
	cycleConfig "github.com/ryanthedev/cycle-cli/internal/config"
	cycleEngine "github.com/ryanthedev/cycle-cli/internal/cycle"
	"github.com/ryanthedev/cycle-cli/internal/geometry"
	"github.com/ryanthedev/cycle-cli/internal/logging"
	"github.com/ryanthedev/cycle-cli/internal/output"
	"github.com/ryanthedev/cycle-cli/internal/resolver"
	cycleState "github.com/ryanthedev/cycle-cli/internal/state"
	"github.com/ryanthedev/cycle-cli/internal/types"
)

var (
	socketPath string
	timeout    time.Duration
	jsonOutput bool
	noColor    bool
	debugMode  bool

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Cycle CLI - cyclical window-geometry manager",
	Long: `Cycle is a command-line tool that resizes the focused window through a
repeatable sequence of preset screen ratios.

Invoking the same alignment repeatedly within five seconds steps through the
presets; pausing or switching alignment restarts the sequence. Window reads
and writes go through an accessibility automation bridge.`,
	Version: "0.1.0",
}

// pingCmd tests bridge connectivity
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test connection to the automation bridge",
	Long:  `Sends a ping request to the automation bridge to test connectivity and response time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.NewClient(socketPath, timeout)
		defer c.Close()

		start := time.Now()
		result, err := c.Ping(context.Background())
		elapsed := time.Since(start)

		if err != nil {
			printError(fmt.Sprintf("Ping failed: %v", err))
			return err
		}

		if jsonOutput {
			return printJSON(result)
		}

		successColor.Println("✓ Pong received")
		fmt.Printf("Response time: %v\n", elapsed)

		return nil
	},
}

// resizeCmd cycles the focused window through preset ratios
var resizeCmd = &cobra.Command{
	Use:   "resize [alignment]",
	Short: "Cycle the focused window through preset sizes",
	Long: `Resizes the focused window to the next preset ratio for the given
alignment. Alignment is one of l, r, c, t, b (or left/right/center/top/bottom)
and defaults to l.

Left, right and center take the full monitor height and cycle the width.
Top and bottom keep the window's current width and cycle the height, so they
compose with a prior horizontal placement.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.NewClient(socketPath, timeout)
		defer c.Close()

		alignment := types.AlignLeft
		if len(args) > 0 {
			parsed, ok := types.ParseAlignment(args[0])
			if ok {
				alignment = parsed
			} else {
				output.Notify(c, fmt.Sprintf("Unknown alignment %q, using left", args[0]))
				logging.Warn().Str("arg", args[0]).Msg("invalid alignment argument")
			}
		}

		cfg := loadConfigOrDefaults(c)
		store := cycleState.NewStore(cycleState.CycleStateFile)
		prior := store.Load()

		cachedName := ""
		var cachedGeom *types.Rect
		if prior != nil {
			cachedName = prior.CachedProcessName
			cachedGeom = prior.CachedGeometry
		}

		ctx := context.Background()
		target, err := resolver.Resolve(ctx, c, cachedName, cachedGeom)
		if err != nil {
			output.Notify(c, "No frontmost window to resize")
			logging.Error().Err(err).Msg("target resolution failed")
			return nil
		}

		cat := cfg.Catalog()
		monitor := cat.SelectMonitor(target.Geometry.X)
		seq := monitor.Sequence(alignment)

		now := time.Now()
		effective, next := cycleEngine.NextIndex(prior, alignment, now, len(seq))
		ratio := seq[effective-1]
		newGeom := geometry.Compute(monitor, alignment, ratio, target.Geometry)

		logging.Debug().
			Str("monitor", monitor.Name).
			Str("alignment", alignment.String()).
			Int("index", effective).
			Float64("ratio", ratio).
			Bool("cacheHit", target.CacheHit).
			Msg("applying preset")

		if err := applier.Apply(ctx, c, target.Process, target.Geometry, newGeom); err != nil {
			output.Notify(c, fmt.Sprintf("Could not resize %s", target.Process.Name))
			logging.Error().Err(err).Msg("geometry apply failed")
			return nil
		}

		applier.Persist(store, cycleState.CycleState{
			Index:             next,
			Timestamp:         cycleEngine.EpochSeconds(now),
			Alignment:         alignment,
			CachedProcessName: target.Process.Name,
			CachedGeometry:    &newGeom,
		})

		if jsonOutput {
			return printJSON(map[string]interface{}{
				"process":   target.Process.Name,
				"monitor":   monitor.Name,
				"alignment": alignment.String(),
				"index":     effective,
				"ratio":     ratio,
				"x":         newGeom.X,
				"y":         newGeom.Y,
				"width":     newGeom.Width,
				"height":    newGeom.Height,
			})
		}

		successColor.Printf("✓ %s: %s preset %d/%d (%.0f%%)\n",
			target.Process.Name, alignment, effective, len(seq), ratio*100)
		return nil
	},
}

// nudgeCmd moves and resizes the focused window by deltas
var nudgeCmd = &cobra.Command{
	Use:   "nudge <dx> <dy> <dw> <dh>",
	Short: "Move and resize the focused window by pixel deltas",
	Long: `Shifts the focused window by dx/dy pixels and grows it by dw/dh pixels.
All four deltas are required and may be negative.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.NewClient(socketPath, timeout)
		defer c.Close()

		// Argument problems are a handled no-op, not a crash
		if len(args) != 4 {
			output.Notify(c, "Usage: cycle nudge <dx> <dy> <dw> <dh>")
			return nil
		}

		deltas := make([]float64, 4)
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				output.Notify(c, fmt.Sprintf("Invalid delta %q; usage: cycle nudge <dx> <dy> <dw> <dh>", arg))
				return nil
			}
			deltas[i] = v
		}

		ctx := context.Background()
		target, err := resolver.Resolve(ctx, c, "", nil)
		if err != nil {
			output.Notify(c, "No frontmost window to move")
			logging.Error().Err(err).Msg("target resolution failed")
			return nil
		}

		newGeom := geometry.Nudge(target.Geometry, deltas[0], deltas[1], deltas[2], deltas[3])
		if err := applier.Apply(ctx, c, target.Process, target.Geometry, newGeom); err != nil {
			output.Notify(c, fmt.Sprintf("Could not move %s", target.Process.Name))
			logging.Error().Err(err).Msg("geometry apply failed")
			return nil
		}

		if jsonOutput {
			return printJSON(map[string]interface{}{
				"process": target.Process.Name,
				"x":       newGeom.X,
				"y":       newGeom.Y,
				"width":   newGeom.Width,
				"height":  newGeom.Height,
			})
		}

		successColor.Printf("✓ %s: (%.0f, %.0f) %.0fx%.0f\n",
			target.Process.Name, newGeom.X, newGeom.Y, newGeom.Width, newGeom.Height)
		return nil
	},
}

// appCmd is the parent command for application subcommands
var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Switch between applications",
	Long:  `Commands for activating applications and cycling through a fixed rotation.`,
}

// appSwitchCmd activates a named application
var appSwitchCmd = &cobra.Command{
	Use:   "switch <app-name>",
	Short: "Activate an application unless it is already frontmost",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.NewClient(socketPath, timeout)
		defer c.Close()

		if len(args) != 1 {
			output.Notify(c, "Usage: cycle app switch <app-name>")
			return nil
		}
		name := args[0]

		activated, err := apps.Switch(context.Background(), c, name)
		if err != nil {
			output.Notify(c, fmt.Sprintf("Could not activate %s", name))
			logging.Error().Err(err).Str("app", name).Msg("activation failed")
			return nil
		}

		if activated {
			successColor.Printf("✓ Activated %s\n", name)
		} else {
			fmt.Printf("%s is already frontmost\n", name)
		}
		return nil
	},
}

// appCycleCmd advances through the configured app rotation
var appCycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Activate the next application in the rotation",
	Long: `Cycles through the configured list of applications, advancing from
whichever one is currently frontmost. When the frontmost application is not
in the list, the rotation starts from its first entry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.NewClient(socketPath, timeout)
		defer c.Close()

		cfg := loadConfigOrDefaults(c)

		next, err := apps.Cycle(context.Background(), c, cfg.CycleApps())
		if err != nil {
			output.Notify(c, "Could not cycle applications")
			logging.Error().Err(err).Msg("app cycle failed")
			return nil
		}

		successColor.Printf("✓ Activated %s\n", next)
		return nil
	},
}

// listCmd is the parent command for list subcommands
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List monitors, preset sequences, or processes",
	Long:  `Lists the geometry catalog and running processes in a table format.`,
}

// listMonitorsCmd lists the monitor catalog
var listMonitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List the monitor geometry catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfigOrDefaults(nil)
		monitors := cfg.Catalog().Monitors()

		if jsonOutput {
			return printJSON(monitors)
		}

		output.PrintMonitorsTable(monitors)
		return nil
	},
}

// listSequencesCmd lists the preset ratio sequences
var listSequencesCmd = &cobra.Command{
	Use:   "sequences",
	Short: "List preset ratio sequences per monitor",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfigOrDefaults(nil)
		monitors := cfg.Catalog().Monitors()

		if jsonOutput {
			return printJSON(monitors)
		}

		output.PrintSequencesTable(monitors)
		return nil
	},
}

// listProcessesCmd lists running application processes
var listProcessesCmd = &cobra.Command{
	Use:   "processes",
	Short: "List running application processes",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.NewClient(socketPath, timeout)
		defer c.Close()

		procs, err := c.ListProcesses(context.Background())
		if err != nil {
			printError(fmt.Sprintf("Failed to list processes: %v", err))
			return err
		}

		if jsonOutput {
			return printJSON(procs)
		}

		output.PrintProcessesTable(procs)
		fmt.Printf("\nTotal: %d processes\n", len(procs))
		return nil
	},
}

// stateCmd is the parent command for state subcommands
var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or reset cycling state",
	Long:  `Commands for showing and clearing the persisted cycle state.`,
}

// stateShowCmd shows the persisted cycle state
var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show persisted cycle state",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := cycleState.NewStore(cycleState.CycleStateFile)
		st := store.Load()

		if st == nil {
			fmt.Println("No cycle state recorded")
			return nil
		}

		if jsonOutput {
			return printJSON(st)
		}

		keyColor.Print("State file: ")
		fmt.Println(store.Path())
		output.PrintStateTable(st)
		return nil
	},
}

// stateResetCmd clears the persisted cycle state
var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear persisted cycle state",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range []string{cycleState.CycleStateFile, cycleState.NudgeStateFile} {
			if err := cycleState.NewStore(name).Reset(); err != nil {
				return fmt.Errorf("failed to reset state: %w", err)
			}
		}

		successColor.Println("✓ State has been reset")
		return nil
	},
}

// configCmd is the parent command for config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for showing and validating cycle configuration.`,
}

// configShowCmd shows the effective config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cycleConfig.LoadConfig("")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return printJSON(map[string]interface{}{
			"settings": cfg.Settings,
			"monitors": cfg.Catalog().Monitors(),
			"apps":     cfg.CycleApps(),
		})
	},
}

// configValidateCmd validates a config file
var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}

		cfg, err := cycleConfig.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		successColor.Println("✓ Configuration is valid")
		fmt.Printf("  Monitors: %d\n", len(cfg.Catalog().Monitors()))
		fmt.Printf("  Apps: %d\n", len(cfg.CycleApps()))

		return nil
	},
}

// configInitCmd creates a default config file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cycleConfig.GetConfigPath()

		// Check if file exists
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s", path)
		}

		defaultConfig := `# Cycle configuration
#
# Everything here is optional; built-in defaults apply when a section is
# omitted. Monitors must be listed as [primary, secondary] when given.
# The secondary originY is a per-deployment calibration value; read it off
# your actual display arrangement.

settings:
  edgeSlack: 200

monitors:
  - name: primary
    width: 2560
    height: 1440
    originX: 0
    originY: 0
    horizontal: [0.5, 0.67, 0.33]
    vertical: [0.5, 1.0]
  - name: secondary
    width: 3840
    height: 2160
    originX: 2560
    originY: -133
    horizontal: [0.33, 0.5, 0.25]
    vertical: [0.5, 0.33, 1.0]

apps:
  - Google Chrome
  - Cursor
  - iTerm2
  - Slack
`

		// Create directory
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		// Write file
		if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		successColor.Printf("✓ Created default config at: %s\n", path)
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", client.DefaultSocketPath, "Unix socket path")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	// Add top-level commands
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(resizeCmd)
	rootCmd.AddCommand(nudgeCmd)

	// Add app commands
	rootCmd.AddCommand(appCmd)
	appCmd.AddCommand(appSwitchCmd)
	appCmd.AddCommand(appCycleCmd)

	// Add list subcommands
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listMonitorsCmd)
	listCmd.AddCommand(listSequencesCmd)
	listCmd.AddCommand(listProcessesCmd)

	// Add state commands
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateResetCmd)

	// Add config commands
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configInitCmd)

	// Disable color if requested, enable debug logging if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if debugMode {
			logging.SetDebug(true)
		}
	})
}

func main() {
	// Initialize logging
	logging.Init()
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Helper functions

// loadConfigOrDefaults loads the config, degrading to built-in defaults
// when the file is broken; a bad config must not block a window action
func loadConfigOrDefaults(c *client.Client) *cycleConfig.Config {
	cfg, err := cycleConfig.LoadConfig("")
	if err != nil {
		if c != nil {
			output.Notify(c, "Config file is invalid, using defaults")
		}
		logging.Warn().Err(err).Msg("config load failed, using defaults")
		return cycleConfig.Default()
	}
	return cfg
}

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}
