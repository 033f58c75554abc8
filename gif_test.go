package morph

import (
	"bytes"
	"image"
	"image/gif"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeGIF(t *testing.T) {
	frames := []*image.NRGBA{testImage(16, 16), testImage(16, 16)}

	var buf bytes.Buffer
	err := EncodeGIF(&buf, frames, 50*time.Millisecond, 0)
	assert.NoError(t, err)

	decoded, err := gif.DecodeAll(&buf)
	assert.NoError(t, err)
	assert.Len(t, decoded.Image, 2)
	assert.Equal(t, 0, decoded.LoopCount)
	assert.Equal(t, []int{5, 5}, decoded.Delay)
}

func TestEncodeGIFMinimumDelay(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeGIF(&buf, []*image.NRGBA{testImage(8, 8)}, time.Millisecond, -1)
	assert.NoError(t, err)

	decoded, err := gif.DecodeAll(&buf)
	assert.NoError(t, err)
	assert.Equal(t, []int{1}, decoded.Delay)
}

func TestEncodeGIFNoFrames(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeGIF(&buf, nil, 50*time.Millisecond, 0)

	var dimErr *DimensionError
	assert.ErrorAs(t, err, &dimErr)
}

func TestImagesSkipsFailedFrames(t *testing.T) {
	frames := []Frame{
		{Index: 0, Image: testImage(8, 8)},
		{Index: 1, Err: ErrDegenerateGeometry},
		{Index: 2, Image: testImage(8, 8)},
	}

	imgs := Images(frames)
	assert.Len(t, imgs, 2)
}
