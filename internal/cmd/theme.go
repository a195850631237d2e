package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/buildview/internal/tui/styles"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage color themes",
	Long: `Manage color themes for the viewer.

buildview ships the built-in themes "default" and "mono". A custom theme is
a YAML file set as tui.theme_file; export a built-in theme to get a
starting point.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in themes",
	Args:  cobra.NoArgs,
	RunE:  runThemeList,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a built-in theme to YAML",
	Long: `Export a built-in theme to YAML format for customization.

If no output file is specified, the YAML is printed to stdout.

Examples:
  buildview config theme export default
  buildview config theme export mono my-theme.yaml
  buildview config set tui.theme_file my-theme.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

var themeCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a theme file",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeCheck,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeCheckCmd)
	configCmd.AddCommand(themeCmd)
}

func runThemeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  - %s\n", name)
	}
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	themeName := args[0]
	if !styles.IsBuiltinTheme(themeName) {
		return fmt.Errorf("unknown theme: %s\n\nRun 'buildview config theme list' to see available themes", themeName)
	}

	data, err := styles.ExportTheme(themeName, styles.GetPalette(styles.ThemeName(themeName)))
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	if len(args) > 1 {
		outputPath := args[1]
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", outputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", outputPath)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runThemeCheck(cmd *cobra.Command, args []string) error {
	theme, err := styles.LoadThemeFile(args[0])
	if err != nil {
		return err
	}

	name := theme.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: theme %s is valid\n", args[0], name)
	return nil
}
