package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gomorph/morph"
	"github.com/gomorph/morph/utils"
)

const helpBanner = `
┌┬┐┌─┐┬─┐┌─┐┬ ┬
││││ │├┬┘├─┘├─┤
┴ ┴└─┘┴└─┴  ┴ ┴

Piecewise-affine image morphing driven by landmark correspondences.
    Version: %s

`

// version indicates the current build version.
var version string

var (
	// Flags
	source      = flag.String("in", "", "Source image (png or jpeg)")
	template    = flag.String("points", "", "Landmark template (csv: source_x,source_y,target_x,target_y per line)")
	destination = flag.String("out", "", "Destination file (.gif for an animation, .png for a single frame)")
	frames      = flag.Int("frames", 10, "Number of animation frames [2,100]")
	blend       = flag.Float64("t", 1.0, "Blend factor of a single frame output [0,1]")
	delay       = flag.Int("delay", 50, "Per-frame delay in ms (gif output)")
	loop        = flag.Bool("loop", false, "Generate a forward-then-reverse looping animation")
	workers     = flag.Int("workers", 1, "Number of concurrent frame workers")
	verbose     = flag.Bool("verbose", false, "Enable debug logging to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *source == "" || *template == "" || *destination == "" {
		flag.Usage()
		fatalf("\nUsage: morph -in source.png -points template.csv -out morph.gif")
	}
	if *frames < 2 || *frames > 100 {
		fatalf("frame count %d outside the supported range [2,100]", *frames)
	}

	if *verbose {
		morph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	set, err := loadTemplate(*template)
	if err != nil {
		fatalf("%v", err)
	}
	img, err := loadImage(*source)
	if err != nil {
		fatalf("%v", err)
	}

	m, err := morph.NewMorpher(set, img)
	if err != nil {
		fatalf("unable to prepare the morph: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	spinner := utils.NewSpinner()
	spinner.Start("Rendering...")

	switch strings.ToLower(filepath.Ext(*destination)) {
	case ".gif":
		err = renderAnimation(ctx, m)
	default:
		err = renderFrame(m)
	}
	spinner.Stop()
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Fprintf(os.Stderr, "\nGenerated in: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(start)), utils.SuccessColor))
}

func renderAnimation(ctx context.Context, m *morph.Morpher) error {
	gen := &morph.Generator{
		FrameCount: *frames,
		Loop:       *loop,
		Workers:    *workers,
	}

	rendered := 0
	seq, err := gen.Generate(ctx, m, func() {
		rendered++
	})
	if err != nil {
		return fmt.Errorf("generating the sequence (%d frames rendered): %w", rendered, err)
	}
	for _, f := range seq {
		if f.Err != nil {
			fmt.Fprintf(os.Stderr, "%s\n",
				utils.DecorateText(fmt.Sprintf("frame %d skipped: %v", f.Index, f.Err), utils.ErrorColor))
		}
	}

	out, err := os.Create(*destination)
	if err != nil {
		return err
	}
	defer out.Close()

	// Loop count 0 repeats forever; a non-looping morph plays once.
	loopCount := -1
	if *loop {
		loopCount = 0
	}
	return morph.EncodeGIF(out, morph.Images(seq), time.Duration(*delay)*time.Millisecond, loopCount)
}

func renderFrame(m *morph.Morpher) error {
	frame, err := m.Interpolate(*blend)
	if err != nil {
		return fmt.Errorf("rendering frame at t=%v: %w", *blend, err)
	}

	out, err := os.Create(*destination)
	if err != nil {
		return err
	}
	defer out.Close()

	return png.Encode(out, frame)
}

func loadTemplate(path string) (morph.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return morph.ReadTemplate(f)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s\n", utils.DecorateText(fmt.Sprintf(format, args...), utils.ErrorColor))
	os.Exit(1)
}
