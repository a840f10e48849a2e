package input

import (
	"time"

	"github.com/bnema/floatpane/internal/domain/entity"
)

const (
	velocityWindow     = 100 * time.Millisecond
	maxVelocitySamples = 32
)

type velocitySample struct {
	t time.Time
	p entity.Point
}

// VelocityTracker estimates pointer velocity with a least-squares line fit
// over the samples of the last velocityWindow.
type VelocityTracker struct {
	samples []velocitySample
}

// Reset drops all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}

// Add records a position sample.
func (v *VelocityTracker) Add(t time.Time, p entity.Point) {
	if len(v.samples) == maxVelocitySamples {
		copy(v.samples, v.samples[1:])
		v.samples = v.samples[:len(v.samples)-1]
	}
	v.samples = append(v.samples, velocitySample{t: t, p: p})
}

// Velocity returns the estimated velocity in pixels per second.
func (v *VelocityTracker) Velocity() (vx, vy float64) {
	if len(v.samples) < 2 {
		return 0, 0
	}
	last := v.samples[len(v.samples)-1].t

	var n, sumT, sumX, sumY float64
	var window []velocitySample
	for _, s := range v.samples {
		if last.Sub(s.t) > velocityWindow {
			continue
		}
		window = append(window, s)
		dt := s.t.Sub(last).Seconds()
		n++
		sumT += dt
		sumX += s.p.X
		sumY += s.p.Y
	}
	if n < 2 {
		return 0, 0
	}

	meanT, meanX, meanY := sumT/n, sumX/n, sumY/n
	var covX, covY, varT float64
	for _, s := range window {
		dt := s.t.Sub(last).Seconds() - meanT
		covX += dt * (s.p.X - meanX)
		covY += dt * (s.p.Y - meanY)
		varT += dt * dt
	}
	if varT == 0 {
		return 0, 0
	}
	return covX / varT, covY / varT
}
