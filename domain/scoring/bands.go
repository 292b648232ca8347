package scoring

import "strings"

// Band vocabulary. Banded values may carry a qualifying annotation after the
// band word, e.g. "High ($250,000 stated)"; proxy lookup matches the prefix.
const (
	BandHigh    = "High"
	BandMedium  = "Medium"
	BandLow     = "Low"
	BandUnknown = "Unknown"
)

// Numeric proxies for qualitative bands, used by the tradeoff average
const (
	proxyHigh    = 0.9
	proxyMedium  = 0.6
	proxyLow     = 0.3
	proxyUnknown = 0.5
)

// BandProxy maps a banded value to its numeric proxy. Unrecognized text maps
// to the neutral proxy rather than failing.
func BandProxy(band string) float64 {
	switch {
	case strings.HasPrefix(band, BandHigh):
		return proxyHigh
	case strings.HasPrefix(band, BandMedium):
		return proxyMedium
	case strings.HasPrefix(band, BandLow):
		return proxyLow
	default:
		return proxyUnknown
	}
}

// annotate appends a qualifying annotation to a band word
func annotate(band, qualifier string) string {
	if qualifier == "" {
		return band
	}
	return band + " (" + qualifier + ")"
}
