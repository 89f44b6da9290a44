// Package ppm implements the plain (ASCII) PPM image format, "P3".
//
// The encoded stream starts with a three-line header (the magic "P3",
// the image dimensions, and the maximum channel value 255), followed by
// one "r g b" line per pixel, rows from image top to bottom. The total
// line count is always 3 + width*height.
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// Encode writes the image to w in plain PPM format
func Encode(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("ppm: writing header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// RGBA returns 16-bit channels; shift down to 8 bits
			r, g, b, _ := img.At(x, y).RGBA()
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r>>8, g>>8, b>>8); err != nil {
				return fmt.Errorf("ppm: writing pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: flushing output: %w", err)
	}
	return nil
}
