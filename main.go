package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/df07/go-phong-views/pkg/core"
	"github.com/df07/go-phong-views/pkg/geometry"
	"github.com/df07/go-phong-views/pkg/loaders"
	"github.com/df07/go-phong-views/pkg/renderer"
	"github.com/df07/go-phong-views/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "sphere", "Built-in scene: 'screen', 'sphere' or 'two-spheres'")
	configPath := flag.String("config", "", "Path to a JSON scene config (overrides -scene)")
	viewsFlag := flag.String("views", "", "Comma separated view axes to render, e.g. 'z,y,x' (default: all views of the scene)")
	base := flag.Int("base", 0, "Pixel rows per view (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	outputDir := flag.String("output", "output", "Directory for rendered images")
	profile := flag.Bool("profile", false, "Print the raw samples along the center row of each view")
	compareDir := flag.String("compare", "", "Directory of earlier renders to compare each view against")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Phong View Renderer")
		fmt.Println("Usage: phong-views [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, p := range scene.Presets() {
			fmt.Printf("  %-12s - %s\n", p.Name, p.Description)
		}
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene>/<axis>_<timestamp>.png")
		return
	}

	s, views, name, err := createScene(*sceneName, *configPath)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}
	views, err = selectViews(views, *viewsFlag, *base)
	if err != nil {
		fmt.Printf("Error selecting views: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering scene %q: %d surface(s), %d light(s), %d view(s)\n",
		name, len(s.Surfaces), len(s.Lights), len(views))

	config := renderer.DefaultRasterConfig()
	config.NumWorkers = *workers
	rasterizer := renderer.NewRasterizer(config, core.NewDefaultLogger())

	startTime := time.Now()
	results := rasterizer.RenderViews(s, views)
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	timestamp := time.Now().Format("20060102_150405")
	sceneDir := filepath.Join(*outputDir, name)
	failed := renderer.FirstFatal(results) != nil
	for _, vr := range results {
		if !renderer.IsRecoverable(vr.Err) {
			fmt.Printf("View %s failed: %v\n", vr.View.Axis, vr.Err)
			continue
		}
		printStats(vr)
		if *profile {
			printProfile(vr)
		}
		if *compareDir != "" {
			if previous, ok := previousRender(*compareDir, vr.View.Axis); ok {
				diff, err := compareWithPrevious(previous, vr.Image)
				if err != nil {
					fmt.Printf("  compare with %s: %v\n", previous, err)
				} else {
					fmt.Printf("  max difference to %s: %.4f\n", previous, diff)
				}
			} else {
				fmt.Printf("  no earlier %s render in %s\n", vr.View.Axis, *compareDir)
			}
		}

		filename := filepath.Join(sceneDir, fmt.Sprintf("%s_%s.png", strings.ToLower(vr.View.Axis.String()), timestamp))
		if err := loaders.SaveImage(filename, vr.Image); err != nil {
			fmt.Printf("Error saving PNG: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("Render saved as %s\n", filename)
	}
	if failed {
		os.Exit(1)
	}
}

// createScene builds the scene from a JSON config when one is given, otherwise
// from the named preset. It also returns the name used for the output directory.
func createScene(sceneName, configPath string) (*scene.Scene, []geometry.ViewSpec, string, error) {
	if configPath != "" {
		cfg, err := loaders.LoadSceneConfig(configPath)
		if err != nil {
			return nil, nil, "", err
		}
		s, views, err := cfg.Build()
		if err != nil {
			return nil, nil, "", fmt.Errorf("%s: %w", configPath, err)
		}
		name := cfg.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(configPath), filepath.Ext(configPath))
		}
		return s, views, name, nil
	}

	if sceneName == "" {
		return nil, nil, "", errors.New("no scene specified")
	}
	s, views, err := scene.Lookup(sceneName)
	if err != nil {
		return nil, nil, "", err
	}
	return s, views, sceneName, nil
}

// selectViews keeps the views whose axis is listed in axesFlag and applies a
// base resolution override
func selectViews(views []geometry.ViewSpec, axesFlag string, base int) ([]geometry.ViewSpec, error) {
	var axes []geometry.Axis
	if axesFlag != "" {
		parsed, err := geometry.ParseAxes(axesFlag)
		if err != nil {
			return nil, err
		}
		axes = parsed
	}
	return geometry.SelectViews(views, axes, base)
}

func printStats(vr *renderer.ViewResult) {
	stats := vr.Stats
	fmt.Printf("View %s: %dx%d pixels, %.1f%% covered\n",
		vr.View.Axis, stats.Columns, stats.Rows, 100*stats.Coverage())
	fmt.Printf("  raw samples: max %.6g, min %.6g, mean %.6g\n",
		stats.MaxSample, stats.MinSample, stats.MeanSample)
	for _, cs := range stats.ControlSamples {
		fmt.Printf("  %s[%d] %-6s (%.1f, %.1f, %.1f): %.6g\n",
			cs.Kind, cs.Surface, cs.Name, cs.Point.X, cs.Point.Y, cs.Point.Z, cs.Value)
	}
	if vr.Err != nil {
		fmt.Printf("  warning: %v\n", vr.Err)
	}
}

func printProfile(vr *renderer.ViewResult) {
	fmt.Printf("  profile at v=%.1f:", vr.View.CenterV)
	for _, value := range vr.ProfileAt(vr.View.CenterV) {
		fmt.Printf(" %.4g", value)
	}
	fmt.Println()
}

// previousRender returns the most recent render of axis saved in dir
func previousRender(dir string, axis geometry.Axis) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(dir, strings.ToLower(axis.String())+"_*.png"))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	// Timestamps in the names sort chronologically
	sort.Strings(matches)
	return matches[len(matches)-1], true
}

// compareWithPrevious returns the largest channel difference, in [0, 1],
// between img and the render saved at path
func compareWithPrevious(path string, img image.Image) (float64, error) {
	previous, err := loaders.LoadImage(path)
	if err != nil {
		return 0, err
	}
	return previous.MaxDifference(loaders.NewImageData(img))
}
