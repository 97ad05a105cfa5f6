// Package imaging decodes texture sources into tightly packed RGBA pixels.
package imaging

import (
	"image"
	"image/color"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// LoadBMP reads and decodes a Windows bitmap file.
func LoadBMP(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open bitmap")
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode bitmap %s", path)
	}
	return ToRGBA(img), nil
}

// ToRGBA converts img to an RGBA image whose origin is (0,0) and whose rows
// are packed without padding. An image already in that form is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Solid returns a width x height image filled with c.
func Solid(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}
