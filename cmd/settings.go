package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rangepick/rangepick/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the saved slider settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		return printSettings(cmd.OutOrStdout(), settings)
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Write the default settings to disk",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SaveSettings(config.DefaultSettings()); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Settings reset: %s\n", config.GetSettingsPath())
		return nil
	},
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetSettingsPath())
	},
}

func init() {
	settingsCmd.AddCommand(settingsResetCmd, settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func printSettings(w io.Writer, s *config.Settings) error {
	values, err := s.Values()
	if err != nil {
		return err
	}
	meta := config.GetSettingsMetadata()
	for i, category := range config.CategoryOrder() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "[%s]\n", category)
		for _, m := range meta[category] {
			fmt.Fprintf(w, "  %-20s %-18s = %v\n", m.Label, "("+m.Key+")", values[m.Key])
		}
	}
	return nil
}
