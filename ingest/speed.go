package ingest

// metersPerSecondPerKMH converts a km/h figure to m/s: 1000/3600 = 5/18.
const metersPerSecondPerKMH = 5.0 / 18.0

// SpeedTable maps a highway tag value to its assumed travel speed in km/h.
// A tag absent from the table discards the way it labels.
type SpeedTable map[string]float64

// DefaultSpeedTableKMH is the speed assignment every retained highway type
// uses unless a builder option overrides it.
func DefaultSpeedTableKMH() SpeedTable {
	return SpeedTable{
		"motorway":       110,
		"trunk":          110,
		"primary":        70,
		"secondary":      60,
		"tertiary":       50,
		"motorway_link":  50,
		"trunk_link":     50,
		"primary_link":   50,
		"secondary_link": 50,
		"road":           40,
		"unclassified":   40,
		"residential":    30,
		"unsurfaced":     30,
		"living_street":  10,
		"service":        5,
	}
}

// metersPerSecond looks up tag's speed and converts it, reporting ok=false
// for any tag value not present in the table.
func (t SpeedTable) metersPerSecond(highway string) (speed float64, ok bool) {
	kmh, ok := t[highway]
	if !ok {
		return 0, false
	}
	return kmh * metersPerSecondPerKMH, true
}
