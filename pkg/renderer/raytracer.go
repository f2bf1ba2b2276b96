package renderer

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/plamenxpenchev/ray-tracing-primer/pkg/core"
	"github.com/plamenxpenchev/ray-tracing-primer/pkg/geometry"
)

// attenuation models 50% energy absorption per diffuse bounce
const attenuation = 0.5

// shadowEpsilon suppresses self-intersection of rays spawned at a surface
const shadowEpsilon = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetShapes() []geometry.Shape
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	world      *geometry.ShapeList
	width      int
	height     int
	config     SamplingConfig
	seed       int64
	numWorkers int
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:      scene,
		world:      geometry.NewShapeList(scene.GetShapes()...),
		width:      width,
		height:     height,
		config:     DefaultSamplingConfig(),
		seed:       42, // Deterministic for testing
		numWorkers: 0,  // Auto-detect CPU count
		logger:     &SilentLogger{},
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetSeed sets the base seed for the per-row random generators
func (rt *Raytracer) SetSeed(seed int64) {
	rt.seed = seed
}

// SetNumWorkers sets the number of parallel workers (0 = use CPU count)
func (rt *Raytracer) SetNumWorkers(numWorkers int) {
	rt.numWorkers = numWorkers
}

// SetLogger sets the logger used for progress reporting
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// backgroundGradient returns a gradient color based on ray direction
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// rayColor returns the color for a given ray, recursing for diffuse bounces
func (rt *Raytracer) rayColor(r core.Ray, random *rand.Rand, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := rt.world.Hit(r, shadowEpsilon, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	// Diffuse bounce: scatter toward a random point on the unit sphere
	// centered at the tip of the surface normal
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))
	scattered := core.NewRay(hit.Point, scatterDirection)

	return rt.rayColor(scattered, random, depth-1).Multiply(attenuation)
}

// samplePixel averages jittered camera rays for pixel (i, j) and returns
// the linear (pre-gamma) color
func (rt *Raytracer) samplePixel(camera *Camera, i, j int, random *rand.Rand) core.Vec3 {
	colorAccum := core.Vec3{X: 0, Y: 0, Z: 0}

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Convert pixel coordinates to normalized coordinates with jitter
		u := (float64(i) + random.Float64()) / float64(rt.width-1)
		v := (float64(j) + random.Float64()) / float64(rt.height-1)

		ray := camera.GetRay(u, v)
		colorAccum = colorAccum.Add(rt.rayColor(ray, random, rt.config.MaxDepth))
	}

	return colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
}

// vec3ToColor converts a linear color to RGBA with clamping and gamma-2 correction
func (rt *Raytracer) vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0).GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// rowRandom derives the private random generator for a row from the base seed.
// Row results are independent of worker count and scheduling.
func (rt *Raytracer) rowRandom(j int) *rand.Rand {
	return rand.New(rand.NewSource(rt.seed + int64(j)*1000003))
}

// renderRow renders scanline j into the image and returns the samples taken.
// Camera v=0 is screen-bottom, so row j lands at image row height-1-j.
func (rt *Raytracer) renderRow(j int, img *image.RGBA, random *rand.Rand) int {
	camera := rt.scene.GetCamera()

	for i := 0; i < rt.width; i++ {
		pixelColor := rt.vec3ToColor(rt.samplePixel(camera, i, j, random))
		img.SetRGBA(i, rt.height-1-j, pixelColor)
	}

	return rt.width * rt.config.SamplesPerPixel
}

// RenderPass renders the full image with multi-sampling and returns it
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	stats := newRenderStats(rt.width, rt.height, rt.config.SamplesPerPixel)

	pool := NewWorkerPool(rt.numWorkers, rt.height, func(j int) int {
		// Rows are disjoint image regions, so workers write without locking
		return rt.renderRow(j, img, rt.rowRandom(j))
	})
	pool.Start()

	for j := rt.height - 1; j >= 0; j-- {
		pool.Submit(RowTask{Row: j})
	}
	go pool.Stop() // close the queue, then the results once workers drain

	remaining := rt.height
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		remaining--
		stats.TotalSamples += result.Samples
		rt.logger.Printf("\rScanlines remaining: %d ", remaining)
	}

	stats.finalize()
	return img, stats
}
