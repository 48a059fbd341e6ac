package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/udd-raytracer/udd/internal/logging"
	"github.com/udd-raytracer/udd/shade"
)

var generatePaletteCmd = &cobra.Command{
	Use:   "generate-palette",
	Short: "Write the built-in default palette to a msgpack file",
	Long: `Generate-palette writes the built-in named swatch set to disk in
msgpack format, for later editing or reuse as a --palette argument to
render.`,
	RunE: runGeneratePalette,
}

// paletteOutputFile is separate from the shared outputFile so that the
// render command's flag registration cannot reset this default.
var paletteOutputFile string

func init() {
	generatePaletteCmd.Flags().StringVarP(&paletteOutputFile, "output", "o", "palette.msgpack", "Output palette file")
}

func runGeneratePalette(cmd *cobra.Command, args []string) error {
	log := logging.Get()
	palette := shade.DefaultPalette()

	outFile, err := os.Create(paletteOutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if err := shade.Export(palette, outFile); err != nil {
		return fmt.Errorf("failed to export palette: %w", err)
	}

	log.Info().Int("colors", len(palette.Colors)).Str("output", paletteOutputFile).Msg("palette generated")
	return nil
}
