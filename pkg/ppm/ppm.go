// Package ppm writes images in the plain-text Netpbm color format (P3).
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// MaxValue is the largest channel value written
const MaxValue = 255

// Encode writes img as a P3 file: the header, then one "r g b" line per
// pixel, rows top to bottom. Alpha is dropped.
func Encode(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", bounds.Dx(), bounds.Dy(), MaxValue); err != nil {
		return err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
