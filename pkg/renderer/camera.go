package renderer

import (
	"math"

	"github.com/neudoerf/raytracing/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Width         int         // Image width in pixels
	AspectRatio   float64     // Width / height
	VFov          float64     // Vertical field of view in degrees
	LookFrom      core.Point3 // Camera position
	LookAt        core.Point3 // Point the camera looks at
	Up            core.Vec3   // Camera-relative "up" direction
	DefocusAngle  float64     // Variation angle of rays through each pixel, in degrees; 0 disables depth of field
	FocusDistance float64     // Distance from LookFrom to the plane of perfect focus
}

// DefaultCameraConfig returns a square 100 pixel camera looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:         100,
		AspectRatio:   1.0,
		VFov:          90,
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  0,
		FocusDistance: 10,
	}
}

// Camera generates primary rays for rendering
type Camera struct {
	config       CameraConfig
	width        int
	height       int
	center       core.Point3
	pixel00      core.Point3 // Location of the center of pixel (0, 0)
	pixelDeltaU  core.Vec3   // Offset to the pixel to the right
	pixelDeltaV  core.Vec3   // Offset to the pixel below
	u, v, w      core.Vec3   // Camera frame basis vectors
	defocusDiskU core.Vec3   // Defocus disk horizontal radius
	defocusDiskV core.Vec3   // Defocus disk vertical radius
}

// NewCamera derives the viewport and camera frame from config
func NewCamera(config CameraConfig) *Camera {
	if config.Width < 1 {
		config.Width = 1
	}
	if config.AspectRatio <= 0 {
		config.AspectRatio = 1
	}
	if config.FocusDistance <= 0 {
		config.FocusDistance = 10
	}
	if config.Up.NearZero() {
		config.Up = core.NewVec3(0, 1, 0)
	}

	c := &Camera{config: config, width: config.Width, center: config.LookFrom}
	c.height = max(1, int(float64(config.Width)/config.AspectRatio))

	// Viewport dimensions at the focus plane
	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(c.width) / float64(c.height))

	c.w = config.LookFrom.Subtract(config.LookAt).Normalize()
	c.u = config.Up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(c.width))
	c.pixelDeltaV = viewportV.Divide(float64(c.height))

	upperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00 = upperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image height in pixels, at least one
func (c *Camera) Height() int {
	return c.height
}

// Config returns the configuration after defaults were applied
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Basis returns the camera frame: u points right, v up, w backwards
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// GetRay returns a ray through a random point in pixel (i, j), starting on the
// defocus disk and cast at a random time in [0, 1)
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// defocusDiskSample returns a random point on the camera's defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Point3 {
	p := core.SamplePointInUnitDisk(sampler.Get2D())
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
