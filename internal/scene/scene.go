// Package scene loads the demo scene configuration: a JSON file with CLI
// flag overrides, resolved to renderer inputs.
package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"runtime"

	"geom3/mat3"
	"geom3/quat"
	"geom3/ray"
	"geom3/vec3"
)

// Config holds all configurable scene and render settings.
type Config struct {
	Model      string    `json:"model"`      // "cube" or "octahedron"
	Eulers     []float64 `json:"eulers"`     // base orientation, XYZ degrees
	Quaternion []float64 `json:"quaternion"` // (x,y,z,w); overrides eulers
	LightDir   []float64 `json:"light_dir"`  // towards the light
	Shadow     bool      `json:"shadow"`
	Texture    string    `json:"texture"`

	Frames      int    `json:"frames"`
	Size        int    `json:"size"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
	OutputDir   string `json:"output_dir"`
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scene: read %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Model     string
	OutputDir string
	Texture   string
	Frames    int
	Size      int
	Workers   int
	Shadow    bool
}

// Resolve applies flag overrides and fills remaining defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Shadow {
		c.Shadow = true
	}

	if c.Model == "" {
		c.Model = "cube"
	}
	if c.Frames <= 0 {
		c.Frames = 36
	}
	if c.Size <= 0 {
		c.Size = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if len(c.LightDir) != 3 {
		c.LightDir = []float64{180, 260, 140}
	}
}

// Orientation returns the base model orientation. An explicit quaternion
// wins over euler angles; with neither set, identity.
func (c Config) Orientation() mat3.M3 {
	if len(c.Quaternion) == 4 {
		q := quat.Q{c.Quaternion[0], c.Quaternion[1], c.Quaternion[2], c.Quaternion[3]}
		return mat3.FromQuaternion(q)
	}
	if len(c.Eulers) == 3 {
		q := quat.FromEulers(deg2rad(c.Eulers[0]), deg2rad(c.Eulers[1]), deg2rad(c.Eulers[2]))
		return mat3.FromQuaternion(q)
	}
	return mat3.Identity[float64]()
}

// Light returns the scene light as a ray travelling towards the scene
// from the configured direction.
func (c Config) Light() ray.R3 {
	towards := vec3.V3{c.LightDir[0], c.LightDir[1], c.LightDir[2]}
	return ray.New(towards, towards.Scale(-1))
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
