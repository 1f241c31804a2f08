package domain

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lng float64
}

// Return coordinates as [lat, lng] for map-path compatibility.
func (c Coordinates) PathPoint() []float64 { return []float64{c.Lat, c.Lng} }
