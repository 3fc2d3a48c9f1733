package palette

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// sampleSize bounds the longer edge of the thumbnail used for counting.
const sampleSize = 150

// ErrEmptyImage is returned for images without pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// DominantColor returns the most frequent colour of the image in r, with
// each channel quantized down to a multiple of 32.
func DominantColor(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	return dominant(img)
}

func dominant(img image.Image) (string, error) {
	b := img.Bounds()
	if b.Empty() {
		return "", ErrEmptyImage
	}

	thumb := image.NewNRGBA(thumbBounds(b.Dx(), b.Dy()))
	draw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), img, b, draw.Src, nil)

	counts := make(map[uint32]int)
	var best uint32
	bestN := 0
	for i := 0; i+3 < len(thumb.Pix); i += 4 {
		key := uint32(thumb.Pix[i]&^31)<<16 | uint32(thumb.Pix[i+1]&^31)<<8 | uint32(thumb.Pix[i+2]&^31)
		counts[key]++
		n := counts[key]
		if n > bestN || (n == bestN && key < best) {
			best, bestN = key, n
		}
	}

	c := colorful.Color{
		R: float64(best>>16&0xff) / 255,
		G: float64(best>>8&0xff) / 255,
		B: float64(best&0xff) / 255,
	}
	return c.Hex(), nil
}

func thumbBounds(w, h int) image.Rectangle {
	if w <= sampleSize && h <= sampleSize {
		return image.Rect(0, 0, w, h)
	}
	if w >= h {
		return image.Rect(0, 0, sampleSize, max(1, h*sampleSize/w))
	}
	return image.Rect(0, 0, max(1, w*sampleSize/h), sampleSize)
}

// FromImage is DominantColor followed by Generate.
func FromImage(r io.Reader, mode Mode) (Palette, error) {
	seed, err := DominantColor(r)
	if err != nil {
		return Palette{}, err
	}
	return Generate(seed, mode)
}
