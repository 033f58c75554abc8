package morph

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"
)

// Images extracts the successfully rendered rasters of a sequence, in
// order, dropping failed frames.
func Images(frames []Frame) []*image.NRGBA {
	var imgs []*image.NRGBA
	for _, f := range frames {
		if f.Image != nil {
			imgs = append(imgs, f.Image)
		}
	}
	return imgs
}

// EncodeGIF writes the frames as an animated GIF. The per-frame delay and
// the loop count are caller-supplied metadata: the engine computes frames
// only. delay is rounded down to the GIF container's 10ms resolution
// (minimum one tick); loopCount follows image/gif semantics, 0 meaning
// loop forever and -1 meaning play once.
//
// Every frame is quantized to the Plan9 palette with Floyd-Steinberg
// dithering before encoding.
func EncodeGIF(w io.Writer, frames []*image.NRGBA, delay time.Duration, loopCount int) error {
	if len(frames) == 0 {
		return &DimensionError{What: "gif frame count", Want: 1, Got: 0}
	}

	ticks := int(delay.Milliseconds() / 10)
	if ticks < 1 {
		ticks = 1
	}

	anim := &gif.GIF{LoopCount: loopCount}
	for _, frame := range frames {
		p := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, frame.Bounds(), frame, image.Point{})

		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, ticks)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("morph: encoding gif: %w", err)
	}
	return nil
}
