package cmd

import (
	"github.com/spf13/cobra"

	"github.com/udd-raytracer/udd/internal/logging"
)

var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "udd-raytracer",
	Short: "Trace rays against a static triangle mesh using a uniform voxel grid",
	Long: `udd-raytracer partitions a triangle mesh scene into a uniform voxel grid
and traces primary rays through it with incremental 3D-DDA traversal,
shading each hit with simple Lambertian lighting.`,
	Version:           version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Configure(verbose)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(generatePaletteCmd)
}

// Common flags shared across subcommands.
var (
	paletteFile  string
	ditherEnable bool
	ditherAlgo   string
	outputFile   string
)

func addPaletteFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&paletteFile, "palette", "p", "", "Palette file (msgpack format); empty uses the built-in default")
	cmd.Flags().BoolVar(&ditherEnable, "dither", false, "Enable error diffusion dithering when a palette is applied")
	cmd.Flags().StringVar(&ditherAlgo, "dither-algorithm", "floyd-steinberg", "Dithering algorithm (floyd-steinberg)")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (required)")
	cmd.MarkFlagRequired("output")
}
