package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/figstyle/pkg/figsize"
	"github.com/matzehuels/figstyle/pkg/mathtext"
	"github.com/matzehuels/figstyle/pkg/style"
)

const cmPerInch = 2.54

// presetsCommand lists the named figure widths.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List figure width presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writePresets(cmd.OutOrStdout())
		},
	}
}

func writePresets(w io.Writer) error {
	var rows [][]string
	for _, p := range figsize.Presets() {
		rows = append(rows, []string{
			p.Name,
			fmt.Sprintf("%.2f", p.Inches),
			fmt.Sprintf("%.1f", p.Inches*cmPerInch),
		})
	}
	_, err := fmt.Fprintln(w, newTable("Preset", "Inches", "cm").Rows(rows...).Render())
	return err
}

// stylesCommand lists the embedded style sheets.
func (c *CLI) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List style sheets with their font size and resolution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeStyles(cmd.OutOrStdout())
		},
	}
}

func writeStyles(w io.Writer) error {
	var rows [][]string
	for _, name := range style.Names() {
		cfg, err := style.Load(name)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			cfg.Name,
			fmt.Sprintf("%g pt", cfg.Font.Size),
			cfg.Font.Typeface + " " + cfg.Font.Variant,
			cfg.Palette,
			fmt.Sprintf("%g", cfg.Figure.DPI),
			fmt.Sprintf("%g", cfg.Figure.SaveDPI),
		})
	}
	t := newTable("Style", "Font", "Typeface", "Palette", "DPI", "Save DPI").Rows(rows...)
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// mathtextCommand prints the mathtext form of a label.
func (c *CLI) mathtextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mathtext [text]",
		Short: "Convert plain text to upright mathtext",
		Long: `Convert plain text to upright mathtext, the form used for labels with
mathtext = true in a figure description.

Example:
  $ figstyle mathtext "rate (Hz)"
  $\mathrm{rate} \mathrm{(Hz)}$`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), mathtext.FromText(strings.Join(args, " ")))
			return err
		},
	}
}

// newTable returns a rounded table with dim borders and bold gray headers.
func newTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return cellStyle.Foreground(colorCyan)
			}
			return cellStyle
		})
}
