// Command orbit renders a turntable frame sequence of a generated solid,
// driven by the geom3 matrix/ray toolkit, and writes the frames as WebP.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"geom3/internal/mesh"
	"geom3/internal/raster"
	"geom3/internal/render"
	"geom3/internal/scene"
	"geom3/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to scene config JSON file")
	model := flag.String("model", "", "Solid to render: cube or octahedron")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 36)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	texPath := flag.String("texture", "", "Optional TGA/PNG/JPEG texture")
	shadow := flag.Bool("shadow", false, "Flatten a ground shadow along the light direction")

	flag.Parse()

	var cfg scene.Config
	if *configFile != "" {
		var err error
		cfg, err = scene.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(scene.Flags{
		Model:     *model,
		OutputDir: *outputDir,
		Texture:   *texPath,
		Frames:    *frames,
		Size:      *size,
		Workers:   *workers,
		Shadow:    *shadow,
	})

	msh, err := mesh.ByName(cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var tex *image.NRGBA
	if cfg.Texture != "" {
		tex, err = texture.Load(cfg.Texture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	light := cfg.Light()
	lightCfg := raster.DefaultLight()
	lightCfg.Dir = light.Invert().Direction()

	fmt.Printf("Rendering %d frames of %s (%dx%d, %d workers)\n",
		cfg.Frames, cfg.Model, cfg.Size, cfg.Size, cfg.Workers)
	start := time.Now()

	results := render.Turntable(render.TurntableConfig{
		Mesh:      msh,
		Base:      cfg.Orientation(),
		Light:     light,
		Frames:    cfg.Frames,
		Workers:   cfg.Workers,
		OutputDir: cfg.OutputDir,
		Options: render.Options{
			Size:        cfg.Size,
			Supersample: cfg.Supersample,
			Shadow:      cfg.Shadow,
			Tex:         tex,
			Light:       lightCfg,
		},
	})

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  frame %d: %v\n", r.Frame, r.Err)
		}
	}

	fmt.Printf("Done: %d/%d frames in %.1fs -> %s\n",
		len(results)-failed, len(results), time.Since(start).Seconds(), cfg.OutputDir)
	if failed > 0 {
		os.Exit(1)
	}
}
