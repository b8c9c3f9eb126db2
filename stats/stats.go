// Package stats provides channel-wise statistics over color samples.
package stats

import (
	"math"

	"github.com/pdf/gochroma/common"
)

// Channels holds one float64 value per color channel.  The stabilizer keeps
// its rolling windows in Channels form so that deviations are compared
// against the stability threshold at full precision; only published colors
// are rounded.
type Channels struct {
	R float64
	G float64
	B float64
}

// ChannelsOf converts a color to its Channels form.
func ChannelsOf(c common.Color) Channels {
	return Channels{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Color rounds ch to the nearest integer per channel, clamped to [0, 255].
func (ch Channels) Color() common.Color {
	return common.Color{
		R: roundChannel(ch.R),
		G: roundChannel(ch.G),
		B: roundChannel(ch.B),
	}
}

func roundChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// Mean returns the per-channel arithmetic mean of samples.  Calling Mean
// over an empty window is a programming error, reported as
// common.ErrNoSamples.
func Mean(samples []Channels) (Channels, error) {
	if len(samples) == 0 {
		return Channels{}, common.ErrNoSamples
	}
	var sum Channels
	for _, s := range samples {
		sum.R += s.R
		sum.G += s.G
		sum.B += s.B
	}
	n := float64(len(samples))
	return Channels{R: sum.R / n, G: sum.G / n, B: sum.B / n}, nil
}

// StdDev returns the per-channel population standard deviation of samples:
// the sum of squared deviations is divided by N, not N-1.  Same empty-window
// contract as Mean.
func StdDev(samples []Channels) (Channels, error) {
	mean, err := Mean(samples)
	if err != nil {
		return Channels{}, err
	}
	var sq Channels
	for _, s := range samples {
		sq.R += (s.R - mean.R) * (s.R - mean.R)
		sq.G += (s.G - mean.G) * (s.G - mean.G)
		sq.B += (s.B - mean.B) * (s.B - mean.B)
	}
	n := float64(len(samples))
	return Channels{
		R: math.Sqrt(sq.R / n),
		G: math.Sqrt(sq.G / n),
		B: math.Sqrt(sq.B / n),
	}, nil
}

// Average returns the per-channel mean of colors, rounded back to a color.
func Average(colors []common.Color) (common.Color, error) {
	mean, err := Mean(channels(colors))
	if err != nil {
		return common.Color{}, err
	}
	return mean.Color(), nil
}

// StandardDeviation returns the per-channel population standard deviation
// of colors.  The result stays in Channels form - rounding deviations to
// integers would quantize comparisons against fractional thresholds.
func StandardDeviation(colors []common.Color) (Channels, error) {
	return StdDev(channels(colors))
}

func channels(colors []common.Color) []Channels {
	out := make([]Channels, len(colors))
	for i, c := range colors {
		out[i] = ChannelsOf(c)
	}
	return out
}
