package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	"github.com/willbeason/fractals/pkg/viewport"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Config{
		Iterations:  40,
		JuliaAngle:  math.Pi / 2,
		Size:        800,
		Mode:        "colormap",
		Format:      "png",
		Out:         "out",
		Prefix:      "Screenshot",
		Frames:      1,
		Zoom:        1,
		Supersample: 1,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.yaml")
	content := []byte(`
iterations: 100
size: 256
mode: gray
viewport:
  xmin: -0.5
  xmax: 0.5
  ymin: -0.25
  ymax: 0.25
`)
	if err := os.WriteFile(file, content, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FRACTAL_SIZE", "512")
	t.Setenv("FRACTAL_JULIA_ANGLE", "1.5")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int(KeyIterations, 40, "")
	if err := flags.Parse([]string{"--iterations=7"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(New(), file, flags)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Iterations != 7 {
		t.Errorf("Iterations = %d, want 7 from flag", cfg.Iterations)
	}
	if cfg.Size != 512 {
		t.Errorf("Size = %d, want 512 from env", cfg.Size)
	}
	if cfg.JuliaAngle != 1.5 {
		t.Errorf("JuliaAngle = %v, want 1.5 from env", cfg.JuliaAngle)
	}
	if cfg.Mode != "gray" {
		t.Errorf("Mode = %q, want gray from file", cfg.Mode)
	}

	want := viewport.Viewport{XMin: -0.5, XMax: 0.5, YMin: -0.25, YMax: 0.25}
	if cfg.Viewport == nil || *cfg.Viewport != want {
		t.Errorf("Viewport = %v, want %v", cfg.Viewport, want)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"), nil); err == nil {
		t.Error("Load(absent file) error = nil, want error")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{Iterations: 1, Size: 1, Frames: 1, Zoom: 1, Supersample: 1}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	bad := []func(*Config){
		func(c *Config) { c.Iterations = -1 },
		func(c *Config) { c.Size = 0 },
		func(c *Config) { c.Frames = 0 },
		func(c *Config) { c.Zoom = 0 },
		func(c *Config) { c.Zoom = math.NaN() },
		func(c *Config) { c.Supersample = 0 },
		func(c *Config) { c.Viewport = &viewport.Viewport{} },
	}
	for i, mutate := range bad {
		c := valid
		mutate(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: Validate() = nil, want error", i)
		}
	}
}

func TestViewportFor(t *testing.T) {
	explicit := viewport.Viewport{XMin: 0, XMax: 1, YMin: 0, YMax: 1}

	tests := []struct {
		name string
		cfg  Config
		want viewport.Viewport
	}{
		{"fallback", Config{}, viewport.MandelbrotDefault},
		{"region", Config{Region: "seahorse"}, viewport.SeahorseValley},
		{"explicit wins", Config{Region: "seahorse", Viewport: &explicit}, explicit},
	}
	for _, tt := range tests {
		got, err := tt.cfg.ViewportFor(viewport.MandelbrotDefault)
		if err != nil {
			t.Fatalf("%s: ViewportFor() error = %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: ViewportFor() = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := (Config{Region: "nowhere"}).ViewportFor(viewport.Default); err == nil {
		t.Error("ViewportFor(unknown region) error = nil, want error")
	}
}
