package noise

import "testing"

func TestSampleRange(t *testing.T) {
	f := New(12345)
	for ch := Channel(0); ch < numChannels; ch++ {
		for y := 0; y < 32; y++ {
			for x := 0; x < 32; x++ {
				v := f.Sample(ch, float64(x), float64(y), 25.0)
				if v < 0 || v > 1 {
					t.Fatalf("Sample(%d, %d, %d) = %f, want [0, 1]", ch, x, y, v)
				}
			}
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	a := New(999)
	b := New(999)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			va := a.Sample(ChannelElevationBase, float64(x), float64(y), 100.0)
			vb := b.Sample(ChannelElevationBase, float64(x), float64(y), 100.0)
			if va != vb {
				t.Fatalf("samples differ at (%d, %d): %f != %f", x, y, va, vb)
			}
		}
	}
}

func TestChannelsDecorrelated(t *testing.T) {
	f := New(12345)
	// Identical samples on every channel would mean the channel offsets
	// are not being applied.
	identical := true
	for i := 0; i < 16 && identical; i++ {
		x, y := float64(i*7), float64(i*13)
		tv := f.Sample(ChannelTemperature, x, y, 50.0)
		hv := f.Sample(ChannelHumidity, x, y, 50.0)
		if tv != hv {
			identical = false
		}
	}
	if identical {
		t.Error("temperature and humidity channels returned identical samples")
	}
}

func TestPerlinBackend(t *testing.T) {
	f := NewWithBackend(42, BackendPerlin)
	for i := 0; i < 64; i++ {
		v := f.Sample(ChannelElevationBase, float64(i), float64(i*3), 10.0)
		if v < 0 || v > 1 {
			t.Fatalf("perlin sample %d = %f, want [0, 1]", i, v)
		}
	}
}
