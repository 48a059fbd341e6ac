package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/udd-raytracer/udd/geom"
	"github.com/udd-raytracer/udd/grid"
	"github.com/udd-raytracer/udd/internal/logging"
	"github.com/udd-raytracer/udd/render"
	"github.com/udd-raytracer/udd/scene"
	"github.com/udd-raytracer/udd/shade"
)

var (
	width, height    int
	fovDeg           float64
	eyeX, eyeY, eyeZ float64
	atX, atY, atZ    float64
)

var renderCmd = &cobra.Command{
	Use:   "render <input.gltf>",
	Short: "Render a glTF mesh scene to PNG",
	Long: `Render builds a uniform voxel grid over a glTF scene, traces one
primary ray per pixel with incremental 3D-DDA traversal, shades each hit,
and writes the result as PNG. With --palette it additionally stylizes
the image against a fixed color palette, optionally with dithering.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVar(&width, "width", 512, "Output image width in pixels")
	renderCmd.Flags().IntVar(&height, "height", 512, "Output image height in pixels")
	renderCmd.Flags().Float64Var(&fovDeg, "fov", 50, "Vertical field of view in degrees")
	renderCmd.Flags().Float64Var(&eyeX, "eye-x", 0, "Camera eye X")
	renderCmd.Flags().Float64Var(&eyeY, "eye-y", 0, "Camera eye Y")
	renderCmd.Flags().Float64Var(&eyeZ, "eye-z", 5, "Camera eye Z")
	renderCmd.Flags().Float64Var(&atX, "at-x", 0, "Camera look-at X")
	renderCmd.Flags().Float64Var(&atY, "at-y", 0, "Camera look-at Y")
	renderCmd.Flags().Float64Var(&atZ, "at-z", 0, "Camera look-at Z")
	addPaletteFlags(renderCmd)
	addOutputFlags(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	log := logging.Get()
	inputFile := args[0]

	if ext := strings.ToLower(filepath.Ext(inputFile)); ext != ".gltf" && ext != ".glb" {
		return fmt.Errorf("unsupported input format: %s", ext)
	}

	meshReader, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer meshReader.Close()

	scn, err := scene.LoadGLTF(meshReader)
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}
	log.Info().Int("triangles", scn.Len()).Msg("scene loaded")

	g, err := grid.Build(scn)
	if err != nil {
		return fmt.Errorf("failed to build grid: %w", err)
	}
	grid.Voxelize(g, scn)
	log.Info().Ints("resolution", g.NV[:]).Msg("grid built")

	cam := render.NewCamera(
		geom.Vec3{X: float32(eyeX), Y: float32(eyeY), Z: float32(eyeZ)},
		geom.Vec3{X: float32(atX), Y: float32(atY), Z: float32(atZ)},
		geom.Vec3{X: 0, Y: 1, Z: 0},
		float32(fovDeg), width, height,
	)

	img := render.RenderImage(scn, g, cam)

	if paletteFile != "" || ditherEnable {
		palette, err := loadPalette()
		if err != nil {
			return err
		}
		img = render.Stylize(img, palette, shade.DitherConfig{Enabled: ditherEnable, Algorithm: ditherAlgo})
	}

	outFile, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if err := render.WriteImage(img, outFile); err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}

	log.Info().Str("output", outputFile).Msg("render complete")
	return nil
}

func loadPalette() (*shade.Palette, error) {
	if paletteFile == "" {
		return shade.DefaultPalette(), nil
	}

	f, err := os.Open(paletteFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette file: %w", err)
	}
	defer f.Close()

	palette, err := shade.Import(f)
	if err != nil {
		return nil, fmt.Errorf("failed to import palette: %w", err)
	}
	return palette, nil
}
