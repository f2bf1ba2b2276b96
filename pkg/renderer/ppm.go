package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// WritePPM serializes the image as plain-text PPM (P3): a three-line
// header, then one "R G B" line per pixel in row-major order, top row first.
func WritePPM(w io.Writer, img *image.RGBA) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B)
		}
	}

	return bw.Flush()
}
