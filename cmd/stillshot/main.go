package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stillshot",
	Short: "Render still images of triangle meshes, STL and glTF models",
	Long: `stillshot builds a scene from a model file or a vertex-triple table,
places a camera by spherical coordinates or bounding-box framing, lights it
with a point light and rasterizes a PNG, WebP or TGA image.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
