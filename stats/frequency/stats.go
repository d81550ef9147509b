// Package frequency reports spectral shape statistics of a spectrum.
//
// Real signals have conjugate-symmetric spectra, so the statistics cover the
// one-sided half: bins 0 through N/2, at frequencies k*rate/N.
package frequency

import (
	"math"

	"github.com/cwbudde/algo-signal/dsp/spectrum"
	"gonum.org/v1/gonum/floats"
)

// Stats holds frequency-domain statistics of a one-sided magnitude spectrum.
//
//nolint:revive
type Stats struct {
	BinCount   int
	DC         float64 // bin 0 magnitude
	DC_dB      float64
	Sum        float64 // sum of magnitudes
	Sum_dB     float64
	Max        float64
	MaxBin     int
	Min        float64
	MinBin     int
	Average    float64
	Average_dB float64
	Range      float64
	Range_dB   float64
	Energy     float64 // sum of squared magnitudes
	Power      float64 // Energy / BinCount
	// Spectral shape descriptors
	Centroid  float64 // spectral centroid (Hz)
	Spread    float64 // spectral spread (Hz)
	Flatness  float64 // spectral flatness (Wiener entropy), 0..1
	Rolloff   float64 // frequency below which 85% energy (Hz)
	Bandwidth float64 // 3 dB bandwidth around peak (Hz)
}

// DefaultRolloff is the energy fraction Calculate uses for Rolloff.
const DefaultRolloff = 0.85

// toDB converts a linear magnitude to decibels.
// Returns -Inf for zero values.
func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}

// oneSided returns the magnitudes and frequencies of bins 0..N/2.
func oneSided(s *spectrum.Spectrum) (mag, freqs []float64) {
	if s == nil || s.Len() == 0 {
		return nil, nil
	}
	h := s.Len()/2 + 1
	return s.Magnitude()[:h], s.Frequencies()[:h]
}

// Calculate computes all frequency-domain statistics of s.
func Calculate(s *spectrum.Spectrum) Stats {
	mag, freqs := oneSided(s)
	n := len(mag)
	if n == 0 {
		return Stats{
			DC_dB:      math.Inf(-1),
			Sum_dB:     math.Inf(-1),
			Average_dB: math.Inf(-1),
			Range_dB:   math.Inf(-1),
		}
	}

	var st Stats
	st.BinCount = n
	st.DC = mag[0]
	st.DC_dB = toDB(st.DC)
	st.Sum = floats.Sum(mag)
	st.Sum_dB = toDB(st.Sum)
	st.Energy = floats.Dot(mag, mag)
	st.MaxBin = floats.MaxIdx(mag)
	st.Max = mag[st.MaxBin]
	st.MinBin = floats.MinIdx(mag)
	st.Min = mag[st.MinBin]
	st.Average = st.Sum / float64(n)
	st.Average_dB = toDB(st.Average)
	st.Range = st.Max - st.Min
	st.Range_dB = toDB(st.Range)
	st.Power = st.Energy / float64(n)

	if n < 2 {
		return st
	}
	st.Centroid = centroid(mag, freqs, st.Sum)
	st.Spread = spread(mag, freqs, st.Centroid, st.Sum)
	st.Flatness = flatness(mag)
	st.Rolloff = rolloff(mag, freqs, DefaultRolloff)
	st.Bandwidth = bandwidth(mag, freqs)
	return st
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(s *spectrum.Spectrum) float64 {
	mag, freqs := oneSided(s)
	if len(mag) < 2 {
		return 0
	}
	return centroid(mag, freqs, floats.Sum(mag))
}

func centroid(mag, freqs []float64, sumMag float64) float64 {
	if sumMag == 0 {
		return 0
	}
	return floats.Dot(freqs, mag) / sumMag
}

// spread is the magnitude-weighted standard deviation around the centroid.
func spread(mag, freqs []float64, cent, sumMag float64) float64 {
	if sumMag == 0 {
		return 0
	}
	var acc float64
	for i, v := range mag {
		d := freqs[i] - cent
		acc += d * d * v
	}
	return math.Sqrt(acc / sumMag)
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
// Flatness = exp(mean(log(|X_i|))) / mean(|X_i|)
//
// The DC bin is excluded. If any considered bin is zero, 0 is returned.
func Flatness(s *spectrum.Spectrum) float64 {
	mag, _ := oneSided(s)
	return flatness(mag)
}

func flatness(mag []float64) float64 {
	if len(mag) < 2 {
		return 0
	}
	bins := mag[1:]
	meanLin := floats.Sum(bins) / float64(len(bins))
	if meanLin == 0 || floats.Min(bins) <= 0 {
		return 0
	}
	var sumLog float64
	for _, v := range bins {
		sumLog += math.Log(v)
	}
	return math.Exp(sumLog/float64(len(bins))) / meanLin
}

// Rolloff returns the frequency below which the given fraction (0..1) of
// spectral energy lies.
func Rolloff(s *spectrum.Spectrum, percent float64) float64 {
	mag, freqs := oneSided(s)
	if len(mag) < 2 {
		return 0
	}
	return rolloff(mag, freqs, percent)
}

func rolloff(mag, freqs []float64, percent float64) float64 {
	cum := make([]float64, len(mag))
	for i, v := range mag {
		cum[i] = v * v
	}
	floats.CumSum(cum, cum)
	total := cum[len(cum)-1]
	if total == 0 {
		return 0
	}
	threshold := percent * total
	for i, e := range cum {
		if e >= threshold {
			return freqs[i]
		}
	}
	return freqs[len(freqs)-1]
}

// Bandwidth returns the 3 dB bandwidth around the spectral peak in Hz.
//
// The -3 dB points (peak/sqrt(2)) are located on both sides of the peak bin
// with linear interpolation between bins.
func Bandwidth(s *spectrum.Spectrum) float64 {
	mag, freqs := oneSided(s)
	if len(mag) < 2 {
		return 0
	}
	return bandwidth(mag, freqs)
}

func bandwidth(mag, freqs []float64) float64 {
	n := len(mag)
	peakBin := floats.MaxIdx(mag)
	peakVal := mag[peakBin]
	if peakVal == 0 {
		return 0
	}
	threshold := peakVal / math.Sqrt2

	lower := freqs[0]
	for i := peakBin; i >= 1; i-- {
		if mag[i-1] <= threshold && mag[i] > threshold {
			lower = interpFreq(freqs[i-1], freqs[i], mag[i-1], mag[i], threshold)
			break
		}
	}
	upper := freqs[n-1]
	for i := peakBin; i < n-1; i++ {
		if mag[i+1] <= threshold && mag[i] > threshold {
			upper = interpFreq(freqs[i], freqs[i+1], mag[i], mag[i+1], threshold)
			break
		}
	}
	return math.Max(upper-lower, 0)
}

// interpFreq finds where the magnitude crosses threshold between two bins.
func interpFreq(fLow, fHigh, magLow, magHigh, threshold float64) float64 {
	denom := magHigh - magLow
	if denom == 0 {
		return (fLow + fHigh) / 2
	}
	t := (threshold - magLow) / denom
	return fLow + t*(fHigh-fLow)
}
