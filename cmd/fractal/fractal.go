package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/willbeason/fractals/pkg/config"
	"github.com/willbeason/fractals/pkg/export"
	"github.com/willbeason/fractals/pkg/logging"
	"github.com/willbeason/fractals/pkg/render"
)

// app carries the settings resolved before any subcommand runs.
type app struct {
	v          *viper.Viper
	configFile string

	cfg    config.Config
	mode   render.Mode
	format export.Format
}

func mainCmd() *cobra.Command {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:   "fractal",
		Short: "Render Newton, Mandelbrot and Julia fractals to image files",
		Long: `Render Newton basins, Mandelbrot and Julia escape-time fractals.

Settings come from flags, then FRACTAL_* environment variables, then a config
file (--config, or fractal.yaml in the working directory).`,
		PersistentPreRunE: a.load,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = logging.Logger().Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file")
	flags.Int(config.KeyIterations, 40, "iteration budget per pixel")
	flags.Float64(config.KeyJuliaAngle, 0, "rotation of the Julia constant in radians (default pi/2)")
	flags.Int(config.KeySize, 800, "width and height of the image in pixels")
	flags.Var(&a.mode, config.KeyMode, "coloring: colormap or gray")
	flags.Var(&a.format, config.KeyFormat, "image format: png, bmp or tiff")
	flags.String(config.KeyOut, "out", "output directory")
	flags.String(config.KeyPrefix, "Screenshot", "file name prefix")
	flags.Int(config.KeyWorkers, 0, "render goroutines, 0 for one per CPU")
	flags.Int64(config.KeySeed, 0, "seed for random root placement")
	flags.Int(config.KeyFrames, 1, "number of frames to render")
	flags.Float64(config.KeyZoom, 1, "viewport scale factor applied after each frame")
	flags.Int(config.KeySupersample, 1, "samples per pixel along each axis")
	flags.Bool(config.KeyCaption, false, "draw the fractal kind and budget on the image")
	flags.String(config.KeyRegion, "", "named viewport, one of default, mandelbrot, seahorse, elephant, minibrot, triple")
	flags.BoolP(config.KeyVerbose, "v", false, "debug logging")

	cmd.AddCommand(newtonCmd(a), juliaCmd(a), mandelbrotCmd(a))

	return cmd
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.configFile, cmd.Flags())
	if err != nil {
		return err
	}

	if err := a.mode.Set(cfg.Mode); err != nil {
		return err
	}
	if err := a.format.Set(cfg.Format); err != nil {
		return err
	}

	l, err := logging.New(cfg.Verbose)
	if err != nil {
		return err
	}
	logging.SetLogger(l)

	a.cfg = cfg
	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
