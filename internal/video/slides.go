package video

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	defaultWidth  = 1280
	defaultHeight = 720
	slideQuality  = 90

	// maxSlidePixels bounds the canvas a header may claim before any pixel
	// buffer is allocated. 8K UHD is about 33 megapixels.
	maxSlidePixels = 40_000_000
)

var (
	// ErrEmptyImage is returned when an uploaded image has no bytes.
	ErrEmptyImage = errors.New("one or more images are empty")
	// ErrImageTooLarge is returned for images above the pixel budget.
	ErrImageTooLarge = errors.New("image exceeds the pixel limit")
)

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxSlidePixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return img, nil
}

// frameSize takes the first slide's size, rounded down to even numbers
// for the H.264 encoder.
func frameSize(first image.Image) (int, int) {
	w, h := defaultWidth, defaultHeight
	if first != nil {
		if b := first.Bounds(); b.Dx() >= 2 && b.Dy() >= 2 {
			w, h = b.Dx(), b.Dy()
		}
	}

	return w &^ 1, h &^ 1
}

// letterbox scales src to fit a w x h black frame, keeping its aspect ratio.
func letterbox(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return dst
	}

	sw, sh := w, sb.Dy()*w/sb.Dx()
	if sh > h {
		sw, sh = sb.Dx()*h/sb.Dy(), h
	}
	x0, y0 := (w-sw)/2, (h-sh)/2
	draw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+sw, y0+sh), src, sb, draw.Over, nil)

	return dst
}

func writeJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: slideQuality}); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
