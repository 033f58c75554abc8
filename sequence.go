package morph

import (
	"context"
	"image"
	"sync"
)

// Frame is one element of a generated morph sequence. A frame that failed
// to render carries its error in Err and a nil Image; the surrounding
// sequence is still produced.
type Frame struct {
	Index int
	T     float64
	Image *image.NRGBA
	Err   error
}

// Generator renders a morph as an evenly spaced frame sequence suitable
// for handing to an animation encoder. Frames are computed independently
// of one another, so generation parallelizes across workers without
// changing the output order.
type Generator struct {
	// FrameCount is the number of forward frames, spaced at
	// t = i/(FrameCount-1) including both endpoints. Must be at least 2.
	FrameCount int

	// Loop appends the full reversed sequence for a ping-pong effect.
	// The turning-point frame appears twice, matching the historical
	// behavior of the format this generator replaces.
	Loop bool

	// Workers bounds concurrent frame computation. Zero or one renders
	// sequentially.
	Workers int

	// StopOnError aborts generation at the first failed frame instead
	// of recording the error and continuing.
	StopOnError bool
}

// Generate renders the sequence for the given morpher. fn, when non-nil,
// is invoked once per completed frame and can drive a progress indicator.
//
// Cancellation is cooperative: ctx is checked between frames, never
// mid-frame. On cancellation (or on the first error with StopOnError set)
// the frames finished so far are returned together with the error.
func (g *Generator) Generate(ctx context.Context, m *Morpher, fn func()) ([]Frame, error) {
	if g.FrameCount < 2 {
		return nil, &DimensionError{What: "frame count", Want: 2, Got: g.FrameCount}
	}

	frames := make([]Frame, g.FrameCount)
	for i := range frames {
		frames[i] = Frame{Index: i, T: float64(i) / float64(g.FrameCount-1)}
	}

	var err error
	if g.Workers > 1 {
		err = g.renderParallel(ctx, m, frames, fn)
	} else {
		err = g.renderSequential(ctx, m, frames, fn)
	}
	if err != nil {
		return completed(frames), err
	}

	if g.Loop {
		n := len(frames)
		for i := n - 1; i >= 0; i-- {
			f := frames[i]
			f.Index = 2*n - 1 - i
			frames = append(frames, f)
		}
	}
	return frames, nil
}

func (g *Generator) renderSequential(ctx context.Context, m *Morpher, frames []Frame, fn func()) error {
	for i := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}

		frames[i].Image, frames[i].Err = m.Interpolate(frames[i].T)
		if frames[i].Err != nil {
			logger().Debug("frame failed", "index", i, "t", frames[i].T, "err", frames[i].Err)
			if g.StopOnError {
				return frames[i].Err
			}
		}
		if fn != nil {
			fn()
		}
	}
	return nil
}

func (g *Generator) renderParallel(ctx context.Context, m *Morpher, frames []Frame, fn func()) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	workers := Min(g.Workers, len(frames))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				img, err := m.Interpolate(frames[i].T)

				mu.Lock()
				frames[i].Image, frames[i].Err = img, err
				if err != nil && firstErr == nil {
					firstErr = err
					if g.StopOnError {
						cancel()
					}
				}
				if fn != nil {
					fn()
				}
				mu.Unlock()
			}
		}()
	}

	var err error
feed:
	for i := range frames {
		select {
		case jobs <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if g.StopOnError && firstErr != nil {
		return firstErr
	}
	return err
}

// completed filters out frames that were never rendered, preserving order.
func completed(frames []Frame) []Frame {
	var done []Frame
	for _, f := range frames {
		if f.Image != nil || f.Err != nil {
			done = append(done, f)
		}
	}
	return done
}
