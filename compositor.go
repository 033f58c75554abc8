package morph

import (
	"image"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// maskThreshold binarizes the rasterized triangle coverage: gg
// antialiases polygon edges, while compositing needs a hard in/out
// decision per pixel.
const maskThreshold = 128

// Composite warps the source raster so that its content moves from the
// source point layout to the destination point layout, one affine map per
// triangle. srcPts and dstPts are parallel pixel-space point lists indexed
// by the triangulation's vertex indices. The output has the source's
// dimensions and is seeded with a copy of the source, so any pixel not
// covered by a destination triangle shows unwarped source content.
//
// Each triangle is processed by warping the entire source raster with the
// triangle's affine map and selecting the destination triangle's footprint
// through a binary mask. Triangles are processed in ascending index order;
// a pixel on a shared edge belongs to the last triangle that painted it,
// which the canonical triangle ordering keeps reproducible.
//
// A triangle whose source vertices are collinear has no affine map; it is
// skipped, its footprint keeps the seeded source pixels and its index is
// recorded in the second return value. This is a local condition, never an
// error. Mismatched layout lengths or an out-of-range vertex index return
// a *DimensionError and no image.
func Composite(src *image.NRGBA, tri *Triangulation, srcPts, dstPts []Point) (*image.NRGBA, []int, error) {
	if len(srcPts) != len(dstPts) {
		return nil, nil, &DimensionError{What: "point layout lengths", Want: len(srcPts), Got: len(dstPts)}
	}
	for _, t := range tri.Triangles {
		for _, v := range t {
			if v < 0 || v >= len(srcPts) {
				return nil, nil, &DimensionError{What: "triangle vertex index", Want: len(srcPts), Got: v}
			}
		}
	}

	src = ImgToNRGBA(src)
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	out := cloneNRGBA(src)

	var skipped []int
	warped := image.NewNRGBA(src.Bounds())

	for i, t := range tri.Triangles {
		sTri := [3]Point{srcPts[t[0]], srcPts[t[1]], srcPts[t[2]]}
		dTri := [3]Point{dstPts[t[0]], dstPts[t[1]], dstPts[t[2]]}

		m, ok := affineFromTriangles(sTri, dTri)
		if !ok {
			logger().Debug("skipping degenerate triangle", "triangle", i, "vertices", t)
			skipped = append(skipped, i)
			continue
		}

		// Warp the whole raster, not just the triangle's footprint.
		// Wasteful, but it keeps triangle edges free of seams where a
		// cropped warp would have to guess at boundary pixels.
		clearNRGBA(warped)
		xdraw.ApproxBiLinear.Transform(warped, m, src, src.Bounds(), xdraw.Src, nil)

		mask := triangleMask(width, height, dTri)
		blendMasked(out, warped, mask, dTri)
	}

	return out, skipped, nil
}

// triangleMask rasterizes the triangle's interior into a full-resolution
// coverage image.
func triangleMask(width, height int, t [3]Point) *image.RGBA {
	ctx := gg.NewContext(width, height)
	ctx.MoveTo(t[0].X, t[0].Y)
	ctx.LineTo(t[1].X, t[1].Y)
	ctx.LineTo(t[2].X, t[2].Y)
	ctx.ClosePath()
	ctx.SetRGB(1, 1, 1)
	ctx.Fill()

	return ctx.Image().(*image.RGBA)
}

// blendMasked selects warped pixels into out wherever the mask covers.
// Only the triangle's bounding box needs visiting; the mask is zero
// everywhere else, so the result is identical to a full-image pass.
func blendMasked(out, warped *image.NRGBA, mask *image.RGBA, t [3]Point) {
	width, height := out.Bounds().Dx(), out.Bounds().Dy()

	x0 := Max(0, int(Min(t[0].X, t[1].X, t[2].X))-1)
	y0 := Max(0, int(Min(t[0].Y, t[1].Y, t[2].Y))-1)
	x1 := Min(width-1, int(Max(t[0].X, t[1].X, t[2].X))+1)
	y1 := Min(height-1, int(Max(t[0].Y, t[1].Y, t[2].Y))+1)

	for y := y0; y <= y1; y++ {
		mi := mask.PixOffset(x0, y)
		pi := out.PixOffset(x0, y)
		for x := x0; x <= x1; x++ {
			if mask.Pix[mi+3] >= maskThreshold {
				copy(out.Pix[pi:pi+4], warped.Pix[pi:pi+4])
			}
			mi += 4
			pi += 4
		}
	}
}

func clearNRGBA(img *image.NRGBA) {
	for i := range img.Pix {
		img.Pix[i] = 0
	}
}
