// Package noise provides the deterministic 2D noise fields that drive
// terrain elevation and climate generation.
package noise

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Channel identifies one logical noise channel. Each channel is seeded
// with its own fixed offset from the base seed, so channels stay
// decorrelated even when they share a base seed.
type Channel int

const (
	ChannelElevationBase Channel = iota
	ChannelElevationMid
	ChannelElevationDetail
	ChannelTemperature
	ChannelHumidity
	numChannels
)

// channelSeedOffset is the per-channel seed spacing. Offsets must never
// overlap, or two channels would sample identical noise.
const channelSeedOffset = 1000

// Backend selects the underlying coherent-noise function.
type Backend int

const (
	// BackendOpenSimplex is the default backend.
	BackendOpenSimplex Backend = iota
	// BackendPerlin uses classic Perlin gradient noise.
	BackendPerlin
)

// sampler is a 2D noise function with output in [-1, 1].
type sampler interface {
	Eval2(x, y float64) float64
}

// perlinSampler adapts go-perlin to the sampler interface.
type perlinSampler struct {
	p *perlin.Perlin
}

func (s perlinSampler) Eval2(x, y float64) float64 {
	return s.p.Noise2D(x, y)
}

// Field is a set of seeded noise channels. All channels are initialized
// up front, so sampling is safe from concurrent workers.
type Field struct {
	Seed     int64
	channels [numChannels]sampler
}

// New returns a new Field with all channels seeded from the given base seed.
func New(seed int64) *Field {
	return NewWithBackend(seed, BackendOpenSimplex)
}

// NewWithBackend returns a new Field using the given noise backend.
func NewWithBackend(seed int64, backend Backend) *Field {
	f := &Field{Seed: seed}
	for ch := Channel(0); ch < numChannels; ch++ {
		chSeed := seed + int64(ch)*channelSeedOffset
		if backend == BackendPerlin {
			f.channels[ch] = perlinSampler{perlin.NewPerlin(2, 2, 3, chSeed)}
		} else {
			f.channels[ch] = opensimplex.New(chSeed)
		}
	}
	return f
}

// Sample returns the noise value for the given channel at (x, y), with the
// coordinates divided by scale. The raw noise output in [-1, 1] is remapped
// to [0, 1]. Sampling is a pure function of (seed, channel, x, y, scale).
func (f *Field) Sample(ch Channel, x, y, scale float64) float64 {
	raw := f.channels[ch].Eval2(x/scale, y/scale)
	v := (raw + 1) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
