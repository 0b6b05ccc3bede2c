// Package render draws the output of a poisson.Sampler.
package render

import (
	"image"
	"image/gif"
	"image/jpeg"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/voidshard/poisson/internal/voronoi"
)

var (
	// ErrUnknownFormat implies we don't know how to encode an image with
	// the given file extension.
	ErrUnknownFormat = errors.New("unknown file format")
)

// Source is anything with points to draw, *poisson.Sampler satisfies this.
type Source interface {
	// Points in the order they were added
	Points() []r2.Point

	// ActivePoints is some subset of Points
	ActivePoints() []r2.Point

	// Bounds of the area points lie in, the image covers [0,Hi] in
	// both directions.
	Bounds() r2.Rect
}

// Draw renders src with the given options (DefaultOptions if nil).
func Draw(src Source, opts *Options) image.Image {
	if opts == nil {
		opts = DefaultOptions()
	}

	b := src.Bounds()
	dc := gg.NewContext(int(math.Ceil(b.X.Hi)), int(math.Ceil(b.Y.Hi)))

	dc.SetColor(opts.Background)
	dc.Clear()

	points := src.Points()

	if opts.DrawCells && len(points) > 0 {
		dc.SetColor(opts.CellColour)
		dc.SetLineWidth(opts.CellWeight)
		for _, cell := range voronoi.New(b, points) {
			poly := cell.Polygon()
			if poly == nil {
				// edges didn't join up, draw them as they are
				for _, e := range cell.Edges {
					dc.DrawLine(e[0].X, e[0].Y, e[1].X, e[1].Y)
				}
				continue
			}
			if !poly.IsClosed() {
				continue
			}
			dc.NewSubPath()
			for _, p := range poly.Points {
				dc.LineTo(p.X, p.Y)
			}
			dc.ClosePath()
		}
		dc.Stroke()
	}

	if opts.DrawLines && len(points) > 1 {
		dc.SetColor(opts.LineColour)
		dc.SetLineWidth(opts.LineWeight)
		dc.SetLineCapRound()
		for i := 1; i < len(points); i++ {
			// one stroke per line, else overlaps of the faint default
			// colour don't add up
			dc.DrawLine(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y)
			dc.Stroke()
		}
	}

	if opts.DrawDots {
		for i, p := range points {
			dc.SetColor(DotColour(i, len(points), opts))
			dc.DrawPoint(p.X, p.Y, opts.DotWeight/2)
			dc.Fill()
		}
	}

	if opts.DrawActive {
		dc.SetColor(opts.ActiveColour)
		for _, p := range src.ActivePoints() {
			dc.DrawPoint(p.X, p.Y, opts.DotWeight/2)
			dc.Fill()
		}
	}

	return dc.Image()
}

// Save renders src & writes it to fpath, the format is chosen by the file
// extension (.png .jpg .jpeg .gif).
func Save(fpath string, src Source, opts *Options) error {
	im := Draw(src, opts)

	ext := filepath.Ext(fpath)
	switch ext {
	case ".png":
		return errors.Wrapf(gg.SavePNG(fpath, im), "saving %s", fpath)
	case ".jpg", ".jpeg", ".gif":
	default:
		return errors.Wrapf(ErrUnknownFormat, "extension %q", ext)
	}

	f, err := os.Create(fpath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", fpath)
	}
	return errors.Wrapf(encode(f, ext, im), "writing %s", fpath)
}

// encode writes im to wc as a gif or jpeg & closes wc
func encode(wc io.WriteCloser, ext string, im image.Image) (err error) {
	defer func() {
		if cerr := wc.Close(); err == nil {
			err = cerr
		}
	}()

	if ext == ".gif" {
		return gif.Encode(wc, im, nil)
	}
	return jpeg.Encode(wc, im, nil)
}
