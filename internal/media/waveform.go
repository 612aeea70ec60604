package media

import (
	"math"
	"math/rand"
)

// Downsample reduces raw PCM samples to the given number of rectified
// amplitude buckets. Each bucket is the mean absolute amplitude of its
// sample range, normalized so the loudest bucket is 1.
func Downsample(samples []int16, buckets int) []float64 {
	if buckets <= 0 || len(samples) == 0 {
		return nil
	}
	out := make([]float64, buckets)
	per := len(samples) / buckets
	if per < 1 {
		per = 1
	}
	peak := 0.0
	for i := 0; i < buckets; i++ {
		start := i * per
		if start >= len(samples) {
			break
		}
		end := start + per
		if end > len(samples) {
			end = len(samples)
		}
		var sum float64
		for _, s := range samples[start:end] {
			sum += math.Abs(float64(s))
		}
		out[i] = sum / float64(end-start)
		if out[i] > peak {
			peak = out[i]
		}
	}
	if peak > 0 {
		for i := range out {
			out[i] /= peak
		}
	}
	return out
}

// SyntheticWaveform generates a placeholder waveform for clips whose audio
// cannot be decoded, so the track never renders blank. The shape is random
// noise over a gentle envelope; it carries no meaning and is generated once
// per load.
func SyntheticWaveform(buckets int, rng *rand.Rand) []float64 {
	if buckets <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	out := make([]float64, buckets)
	for i := range out {
		envelope := 0.55 + 0.35*math.Sin(float64(i)/float64(buckets)*4*math.Pi)
		out[i] = clamp01(envelope * (0.3 + 0.7*rng.Float64()))
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
