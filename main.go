package main

import (
	"fmt"
	"os"
	"time"

	"github.com/plamenxpenchev/ray-tracing-primer/pkg/renderer"
	"github.com/plamenxpenchev/ray-tracing-primer/pkg/scene"
)

// Image parameters are compiled-in: the process takes no arguments and
// writes the PPM image to stdout, progress to stderr.
const (
	aspectRatio     = 16.0 / 9.0
	imageWidth      = 400
	samplesPerPixel = 100
	maxDepth        = 50
)

func main() {
	imageHeight := int(imageWidth / aspectRatio)

	raytracer := renderer.NewRaytracer(scene.NewDefaultScene(), imageWidth, imageHeight)
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	})
	raytracer.SetLogger(renderer.NewWriterLogger(os.Stderr))

	startTime := time.Now()
	img, stats := raytracer.RenderPass()
	renderTime := time.Since(startTime)

	if err := renderer.WritePPM(os.Stdout, img); err != nil {
		fmt.Fprintf(os.Stderr, "\nError writing image: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\nDone. Rendered %d pixels at %.0f samples/pixel in %v\n",
		stats.TotalPixels, stats.AverageSamples, renderTime)
}
