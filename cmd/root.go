package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rangepick/rangepick/internal/config"
	"github.com/rangepick/rangepick/internal/slider"
	"github.com/rangepick/rangepick/internal/tui"
	"github.com/rangepick/rangepick/internal/utils"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "rangepick",
	Short:   "Pick a numeric range with a draggable terminal slider",
	Long:    `rangepick shows a range slider in the terminal. Drag the handles with the mouse and the selected [start, end] is printed on exit.`,
	Version: Version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := initializeGlobalState()

		if err := applySliderFlags(cmd, settings); err != nil {
			return err
		}
		initial, err := initialRange(cmd, settings)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		m, err := tui.InitialRootModel(settings, initial)
		if err != nil {
			return err
		}
		applyTheme(settings.General.Theme)

		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("running slider: %w", err)
		}

		rm, ok := final.(tui.RootModel)
		if !ok {
			return fmt.Errorf("unexpected final model %T", final)
		}
		utils.Debug("exit with range %+v after %d change(s)", rm.Range(), rm.Changes())
		return printRange(cmd.OutOrStdout(), rm.Range(), asJSON)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	addSliderFlags(rootCmd)
	rootCmd.Flags().Int("start", 0, "Initial start value")
	rootCmd.Flags().Int("end", 0, "Initial end value (default: max)")
	rootCmd.Flags().Bool("json", false, "Print the final range as JSON")
	rootCmd.SetVersionTemplate("rangepick version {{.Version}}\n")
}

// addSliderFlags registers the flags that override slider settings.
func addSliderFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("max", slider.DefaultMaxValue, "Upper bound of the range")
	cmd.Flags().Bool("show-left", false, "Show the start handle")
	cmd.Flags().Bool("no-popover", false, "Hide the labels shown while dragging")
	cmd.Flags().String("start-label", "", "Label for the start handle")
	cmd.Flags().String("end-label", "", "Label for the end handle")
	cmd.Flags().Float64("handle-width", slider.DefaultHandleWidth, "Handle width in cells")
}

// applySliderFlags overlays explicitly set flags onto settings.
func applySliderFlags(cmd *cobra.Command, s *config.Settings) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("max") {
		if s.Slider.MaxValue, err = flags.GetFloat64("max"); err != nil {
			return err
		}
	}
	if flags.Changed("show-left") {
		if s.Slider.ShowLeftHandle, err = flags.GetBool("show-left"); err != nil {
			return err
		}
	}
	if flags.Changed("no-popover") {
		hide, err := flags.GetBool("no-popover")
		if err != nil {
			return err
		}
		s.Slider.ShowPopover = !hide
	}
	if flags.Changed("start-label") {
		if s.Slider.StartLabel, err = flags.GetString("start-label"); err != nil {
			return err
		}
	}
	if flags.Changed("end-label") {
		if s.Slider.EndLabel, err = flags.GetString("end-label"); err != nil {
			return err
		}
	}
	if flags.Changed("handle-width") {
		if s.Slider.HandleWidth, err = flags.GetFloat64("handle-width"); err != nil {
			return err
		}
	}
	return nil
}

// initialRange returns nil unless --start or --end was given.
func initialRange(cmd *cobra.Command, s *config.Settings) (*slider.Range, error) {
	flags := cmd.Flags()
	if !flags.Changed("start") && !flags.Changed("end") {
		return nil, nil
	}
	r := slider.Range{End: s.ToSliderConfig().MaxEnd()}
	var err error
	if flags.Changed("start") {
		if r.Start, err = flags.GetInt("start"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("end") {
		if r.End, err = flags.GetInt("end"); err != nil {
			return nil, err
		}
	}
	return &r, nil
}

// initializeGlobalState prepares directories and logging and returns the
// loaded settings, falling back to defaults.
func initializeGlobalState() *config.Settings {
	if err := config.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create config dirs: %v\n", err)
	}
	utils.ConfigureDebug(config.GetLogsDir())

	settings, err := config.LoadSettings()
	if err != nil {
		utils.Debug("Error loading settings, using defaults: %v", err)
		settings = config.DefaultSettings()
	}
	utils.CleanupLogs(settings.General.LogRetentionCount)
	return settings
}

func applyTheme(theme int) {
	switch theme {
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	}
}
