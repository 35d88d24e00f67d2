package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/log"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// runApp runs the application with args and returns what it wrote to stdout.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	saved := stdout
	stdout = &out
	defer func() { stdout = saved }()

	app := NewApp()
	app.Writer = &bytes.Buffer{}
	err := app.Run(append([]string{"weekend-raytracer"}, args...))
	return out.String(), err
}

// parsePPM reads a P3 image into rows of pixels.
func parsePPM(t *testing.T, data string) (int, int, [][][3]int) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(data))
	scanner.Split(bufio.ScanWords)
	next := func() string {
		if !scanner.Scan() {
			t.Fatal("Unexpected end of PPM data")
		}
		return scanner.Text()
	}

	if magic := next(); magic != "P3" {
		t.Fatalf("Expected P3 header, got %q", magic)
	}
	var width, height, maxVal int
	fmt.Sscan(next(), &width)
	fmt.Sscan(next(), &height)
	fmt.Sscan(next(), &maxVal)
	if maxVal != 255 {
		t.Fatalf("Expected max value 255, got %d", maxVal)
	}

	rows := make([][][3]int, height)
	for y := range rows {
		rows[y] = make([][3]int, width)
		for x := range rows[y] {
			for c := 0; c < 3; c++ {
				fmt.Sscan(next(), &rows[y][x][c])
			}
		}
	}
	if scanner.Scan() {
		t.Errorf("Unexpected trailing data %q", scanner.Text())
	}
	return width, height, rows
}

func TestRender_TwoSpheresToStdout(t *testing.T) {
	args := []string{"render", "--scene", "two-spheres", "--width", "16", "--height", "9", "--spp", "8", "--depth", "5"}

	first, err := runApp(t, args...)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	second, err := runApp(t, args...)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if first != second {
		t.Error("Expected identical output for identical seeds")
	}
	if !strings.HasPrefix(first, "P3\n16 9\n255\n") {
		t.Errorf("Unexpected header: %q", first[:min(len(first), 20)])
	}

	width, height, rows := parsePPM(t, first)
	if width != 16 || height != 9 {
		t.Fatalf("Expected 16x9, got %dx%d", width, height)
	}

	// The top row only sees sky, which is bluer than it is red
	for x, p := range rows[0] {
		if p[2] <= p[0] {
			t.Errorf("Top row pixel %d is not sky colored: %v", x, p)
		}
	}

	// The red sphere sits in the middle of the frame
	center := rows[4][8]
	if center[0] <= center[2] {
		t.Errorf("Center pixel is not red tinted: %v", center)
	}
}

func TestRender_SeedChangesNoise(t *testing.T) {
	base := []string{"render", "--scene", "two-spheres", "--width", "8", "--height", "4", "--spp", "2", "--depth", "5"}

	a, err := runApp(t, append(base, "--seed", "1")...)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	b, err := runApp(t, append(base, "--seed", "2")...)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if a == b {
		t.Error("Expected different seeds to produce different noise")
	}
}

func TestRender_PNGFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	stdoutData, err := runApp(t, "render", "--scene", "default", "--width", "12", "--aspect", "2:1", "--spp", "1", "--depth", "3", "-o", out)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if stdoutData != "" {
		t.Errorf("Expected nothing on stdout when writing a file, got %d bytes", len(stdoutData))
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 6 {
		t.Errorf("Expected 12x6 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRender_PPMFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.ppm")
	if _, err := runApp(t, "render", "--scene", "two-spheres", "--width", "4", "--height", "3", "--spp", "1", "-o", out); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n4 3\n255\n") {
		t.Errorf("Unexpected PPM header in %q", data[:min(len(data), 20)])
	}
}

func TestRender_SceneFile(t *testing.T) {
	dir := t.TempDir()
	content := `{
		"camera": {"lookFrom": [0, 0, 0], "lookAt": [0, 0, -1]},
		"materials": {"mirror": {"type": "metal", "albedo": "gold"}},
		"spheres": [{"center": [0, 0, -1], "radius": 0.5, "material": "mirror"}]
	}`
	if err := os.WriteFile(filepath.Join(dir, "mirror.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runApp(t, "render", "--scenes-dir", dir, "--scene", "mirror", "--width", "4", "--height", "2", "--spp", "1")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.HasPrefix(out, "P3\n4 2\n255\n") {
		t.Errorf("Unexpected output %q", out[:min(len(out), 20)])
	}
}

func TestRender_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown scene", []string{"--scene", "nonexistent"}, scene.ErrUnknownScene},
		{"zero samples", []string{"--spp", "0"}, renderer.ErrInvalidSamples},
		{"zero depth", []string{"--depth", "0"}, renderer.ErrInvalidDepth},
		{"tiny image", []string{"--width", "1", "--height", "1"}, renderer.ErrInvalidImageSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runApp(t, append([]string{"render", "--width", "4", "--height", "2", "--spp", "1"}, tc.args...)...)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	_, err := runApp(t, "render", "--look-from", "1,2", "--width", "4", "--height", "2")
	if err == nil || !strings.Contains(err.Error(), "--look-from") {
		t.Errorf("Expected a --look-from parse error, got %v", err)
	}
}

func TestRender_StatsAndProgress(t *testing.T) {
	var logs bytes.Buffer
	log.SetSink(&logs)
	defer func() {
		log.SetSink(os.Stderr)
		log.SetLevel(log.Notice)
	}()

	if _, err := runApp(t, "-v", "render", "--scene", "two-spheres", "--width", "4", "--height", "3", "--spp", "1", "--stats"); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out := logs.String()
	for _, want := range []string{"Scanlines remaining: 2", "Scanlines remaining: 0", "frame statistics", "Rays traced", "4x3"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in log output", want)
		}
	}
}

func TestParseVec3(t *testing.T) {
	testCases := []struct {
		input    string
		expected core.Vec3
		wantErr  bool
	}{
		{"1,2,3", core.NewVec3(1, 2, 3), false},
		{" -2, 0.5 ,1e1", core.NewVec3(-2, 0.5, 10), false},
		{"1,2", core.Vec3{}, true},
		{"a,b,c", core.Vec3{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			v, err := parseVec3(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseVec3(%q) error = %v, wantErr %t", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && !v.Equals(tc.expected) {
				t.Errorf("parseVec3(%q) = %v, want %v", tc.input, v, tc.expected)
			}
		})
	}
}

func TestParseAspect(t *testing.T) {
	testCases := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"16:9", 16.0 / 9.0, false},
		{"2", 2, false},
		{"1.5", 1.5, false},
		{"4:0", 0, true},
		{"-1", 0, true},
		{"wide", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			aspect, err := parseAspect(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseAspect(%q) error = %v, wantErr %t", tc.input, err, tc.wantErr)
			}
			if aspect != tc.expected {
				t.Errorf("parseAspect(%q) = %f, want %f", tc.input, aspect, tc.expected)
			}
		})
	}
}
