// Package semicircle converts between the FIT profile's semicircle
// position units and degrees.
package semicircle

// PerDegree is the number of semicircle units per degree: a semicircle
// spans the full int32 range over 360 degrees. Exported so callers that
// need the raw conversion factor (e.g. a profile's numeric field scale)
// can derive it instead of duplicating the constant.
const PerDegree = float64(1<<31) / 180

// ToDegrees converts a raw signed semicircle reading to degrees.
func ToDegrees(raw int32) float64 {
	return float64(raw) / PerDegree
}

// FromDegrees converts degrees back to a raw signed semicircle value,
// for callers constructing test fixtures.
func FromDegrees(deg float64) int32 {
	return int32(deg * PerDegree)
}
