package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/poisson"
)

// fixed is a Source with set points
type fixed struct {
	points []r2.Point
	active []r2.Point
	w, h   float64
}

func (f *fixed) Points() []r2.Point       { return f.points }
func (f *fixed) ActivePoints() []r2.Point { return f.active }
func (f *fixed) Bounds() r2.Rect {
	return r2.Rect{X: r1.Interval{Lo: 0, Hi: f.w}, Y: r1.Interval{Lo: 0, Hi: f.h}}
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func testSource() *fixed {
	return &fixed{
		points: []r2.Point{{X: 20, Y: 20}, {X: 60, Y: 20}},
		active: []r2.Point{{X: 60, Y: 20}},
		w:      100,
		h:      60.5,
	}
}

func TestDrawDots(t *testing.T) {
	opts := DefaultOptions()
	opts.DrawLines = false

	im := Draw(testSource(), opts)
	require.Equal(t, image.Rect(0, 0, 100, 61), im.Bounds())

	require.Equal(t, color.RGBA{R: 0xff, A: 0xff}, rgba(im.At(20, 20)))
	require.Equal(t, color.RGBA{G: 0xff, B: 0xff, A: 0xff}, rgba(im.At(60, 20)))
	require.Equal(t, color.RGBA{A: 0xff}, rgba(im.At(5, 50)))
}

func TestDrawActive(t *testing.T) {
	opts := DefaultOptions()
	opts.DrawLines = false
	opts.DrawActive = true
	opts.ActiveColour = color.White

	im := Draw(testSource(), opts)
	require.Equal(t, color.RGBA{R: 0xff, A: 0xff}, rgba(im.At(20, 20)))
	require.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, rgba(im.At(60, 20)))
}

func TestDrawLines(t *testing.T) {
	opts := DefaultOptions()
	opts.DrawDots = false
	opts.LineColour = color.White
	opts.LineWeight = 3

	im := Draw(testSource(), opts)
	require.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, rgba(im.At(40, 20)))
	require.Equal(t, color.RGBA{A: 0xff}, rgba(im.At(40, 40)))
}

func TestDrawCells(t *testing.T) {
	opts := DefaultOptions()
	opts.DrawDots = false
	opts.DrawLines = false
	opts.DrawCells = true
	opts.CellColour = color.White
	opts.CellWeight = 3

	im := Draw(testSource(), opts)

	// cells meet half way between the points
	require.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, rgba(im.At(40, 30)))
	require.Equal(t, color.RGBA{A: 0xff}, rgba(im.At(30, 30)))
	require.Equal(t, color.RGBA{A: 0xff}, rgba(im.At(20, 20)))
}

func TestDrawNilOptions(t *testing.T) {
	s, err := poisson.NewSampler(120, 80, 15, 0)
	require.NoError(t, err)
	_, err = s.Start()
	require.NoError(t, err)
	s.Run()

	im := Draw(s, nil)
	require.Equal(t, image.Rect(0, 0, 120, 80), im.Bounds())

	opts := DefaultOptions()
	opts.DrawCells = true
	opts.DrawActive = true
	im = Draw(s, opts)
	require.Equal(t, image.Rect(0, 0, 120, 80), im.Bounds())
}

func TestDotColour(t *testing.T) {
	opts := DefaultOptions()

	require.Equal(t, color.RGBA{R: 0xff, A: 0xff}, rgba(DotColour(0, 4, opts)))
	require.Equal(t, color.RGBA{G: 0xff, B: 0xff, A: 0xff}, rgba(DotColour(2, 4, opts)))
	require.Equal(t, color.RGBA{R: 0xff, A: 0xff}, rgba(DotColour(0, 0, opts)))

	opts.StartHue = 0
	opts.EndHue = 200
	// 2 * 1/4 * 200 = 100 -> a full turn
	require.Equal(t, color.RGBA{R: 0xff, A: 0xff}, rgba(DotColour(2, 4, opts)))

	opts.RainbowDots = false
	require.Equal(t, opts.DotColour, DotColour(3, 4, opts))
}

func TestHSV(t *testing.T) {
	cases := []struct {
		h    float64
		want color.NRGBA
	}{
		{0, color.NRGBA{R: 255, A: 255}},
		{1.0 / 6, color.NRGBA{R: 255, G: 255, A: 255}},
		{2.0 / 6, color.NRGBA{G: 255, A: 255}},
		{4.0 / 6, color.NRGBA{B: 255, A: 255}},
		{5.0 / 6, color.NRGBA{R: 255, B: 255, A: 255}},
		{-1.0 / 6, color.NRGBA{R: 255, B: 255, A: 255}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, hsv(tc.h, 1, 1), "hue %v", tc.h)
	}
	require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, hsv(0.3, 0, 1))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"out.png", "out.jpg", "out.jpeg", "out.gif"} {
		fpath := filepath.Join(dir, name)
		require.NoError(t, Save(fpath, testSource(), nil))

		info, err := os.Stat(fpath)
		require.NoError(t, err)
		require.NotZero(t, info.Size())
	}

	f, err := os.Open(filepath.Join(dir, "out.png"))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 100, cfg.Width)
	require.Equal(t, 61, cfg.Height)
}

func TestSaveUnknownFormat(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "out.bmp")
	err := Save(fpath, testSource(), nil)
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = os.Stat(fpath)
	require.True(t, os.IsNotExist(err))
}

func TestSaveBadPath(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing", "out.gif"), testSource(), nil)
	require.Error(t, err)
}

var errClose = errors.New("disk full")

// badCloser accepts writes but fails to close
type badCloser struct {
	bytes.Buffer
	closed bool
}

func (b *badCloser) Close() error {
	b.closed = true
	return errClose
}

func TestEncodeReportsCloseError(t *testing.T) {
	im := Draw(testSource(), nil)

	for _, ext := range []string{".gif", ".jpg"} {
		wc := &badCloser{}
		err := encode(wc, ext, im)
		require.ErrorIs(t, err, errClose, ext)
		require.True(t, wc.closed)
		require.NotZero(t, wc.Len())
	}
}
