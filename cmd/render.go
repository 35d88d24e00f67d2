package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/encoder"
	"github.com/df07/go-weekend-raytracer/pkg/log"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Images written to "-" end up here.
var stdout io.Writer = os.Stdout

// RenderFlags are the flags accepted by the render command.
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene name, scene file name or path to a .json scene file",
	},
	cli.StringFlag{
		Name:  "scenes-dir",
		Usage: "directory searched for .json scene files (default: ./scenes or ../scenes)",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width (default: the scene's recommended width)",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "frame height (default: derived from width and aspect ratio)",
	},
	cli.StringFlag{
		Name:  "aspect",
		Usage: "camera aspect ratio as W:H or a decimal, e.g. 16:9",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel (default: the scene's setting)",
	},
	cli.IntFlag{
		Name:  "depth",
		Usage: "maximum number of bounces per path (default: the scene's setting)",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 42,
		Usage: "random seed; equal seeds produce identical images",
	},
	cli.StringFlag{
		Name:  "look-from",
		Usage: "camera position as x,y,z",
	},
	cli.StringFlag{
		Name:  "look-at",
		Usage: "camera target as x,y,z",
	},
	cli.StringFlag{
		Name:  "vup",
		Usage: "camera up vector as x,y,z",
	},
	cli.Float64Flag{
		Name:  "vfov",
		Usage: "vertical field of view in degrees",
	},
	cli.Float64Flag{
		Name:  "aperture",
		Usage: "lens diameter; 0 renders a pinhole camera",
	},
	cli.Float64Flag{
		Name:  "focus-dist",
		Usage: "distance to the plane in focus",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "-",
		Usage: "image filename for the rendered frame; '-' writes PPM to stdout, *.png writes PNG",
	},
	cli.BoolFlag{
		Name:  "stats",
		Usage: "display frame statistics after rendering",
	},
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	scenesDir := ctx.String("scenes-dir")
	if scenesDir == "" {
		scenesDir = scene.FindScenesDir()
	}

	sc, err := scene.Load(ctx.String("scene"), scenesDir)
	if err != nil {
		return err
	}
	logger.Noticef("rendering scene %q", sc.Name)

	if err := applyCameraFlags(ctx, &sc.CameraConfig); err != nil {
		return err
	}

	sampling := sc.SamplingConfig
	if ctx.IsSet("spp") {
		sampling.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		sampling.MaxDepth = ctx.Int("depth")
	}

	width := sc.Width
	if ctx.IsSet("width") {
		width = ctx.Int("width")
	}
	width, height := sc.ImageSize(width)
	if ctx.IsSet("height") {
		height = ctx.Int("height")
	}

	opts := renderer.Options{
		Width:    width,
		Height:   height,
		Sampling: sampling,
		Random:   rand.New(rand.NewSource(ctx.Int64("seed"))),
		Logger:   log.Progress{Logger: logger},
	}
	logger.Infof("%dx%d, %d samples per pixel, max depth %d", width, height, sampling.SamplesPerPixel, sampling.MaxDepth)

	camera := sc.Camera()
	logger.Debugf("camera at %v looking along %v", sc.CameraConfig.LookFrom, camera.GetCameraForward())

	rt, err := renderer.NewRaytracer(sc.World, camera, opts)
	if err != nil {
		return err
	}
	frame, stats := rt.Render()

	if err := writeFrame(frame, ctx.String("out")); err != nil {
		return err
	}

	if ctx.Bool("stats") {
		displayFrameStats(stats)
	}
	logger.Noticef("done in %s", stats.RenderTime)
	return nil
}

func applyCameraFlags(ctx *cli.Context, config *renderer.CameraConfig) error {
	vectors := []struct {
		flag   string
		target *core.Vec3
	}{
		{"look-from", &config.LookFrom},
		{"look-at", &config.LookAt},
		{"vup", &config.Up},
	}
	for _, v := range vectors {
		if !ctx.IsSet(v.flag) {
			continue
		}
		parsed, err := parseVec3(ctx.String(v.flag))
		if err != nil {
			return fmt.Errorf("invalid --%s: %w", v.flag, err)
		}
		*v.target = parsed
	}

	if ctx.IsSet("aspect") {
		aspect, err := parseAspect(ctx.String("aspect"))
		if err != nil {
			return fmt.Errorf("invalid --aspect: %w", err)
		}
		config.AspectRatio = aspect
	}
	if ctx.IsSet("vfov") {
		config.VFov = ctx.Float64("vfov")
	}
	if ctx.IsSet("aperture") {
		config.Aperture = ctx.Float64("aperture")
	}
	if ctx.IsSet("focus-dist") {
		config.FocusDistance = ctx.Float64("focus-dist")
	}
	return nil
}

// parseVec3 parses an "x,y,z" triple.
func parseVec3(s string) (core.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z but got %q", s)
	}

	var c [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, err
		}
		c[i] = v
	}
	return core.NewVec3(c[0], c[1], c[2]), nil
}

// parseAspect parses either "W:H" or a plain decimal ratio.
func parseAspect(s string) (float64, error) {
	var aspect float64
	if w, h, ok := strings.Cut(s, ":"); ok {
		wf, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
		if err != nil {
			return 0, err
		}
		hf, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err != nil {
			return 0, err
		}
		if hf == 0 {
			return 0, errors.New("zero height")
		}
		aspect = wf / hf
	} else {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, err
		}
		aspect = v
	}

	if aspect <= 0 {
		return 0, fmt.Errorf("aspect ratio must be positive, got %q", s)
	}
	return aspect, nil
}

func writeFrame(frame *renderer.Frame, out string) error {
	if out == "-" {
		return encoder.Encode(stdout, frame, encoder.PPM)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	format := encoder.FormatForPath(out)
	if err := encoder.Encode(f, frame, format); err != nil {
		f.Close()
		return err
	}
	logger.Noticef("wrote %s image to %s", format, out)
	return f.Close()
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})
	table.AppendBulk(stats.Rows())
	table.SetFooter([]string{"TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
