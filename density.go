package osm2lanes

const (
	// Lane length (meters) which is considered to hold a single vehicle at normal traffic
	DENSITY_REFERENCE_LENGTH = 40.0
)

// DensityClass is a traffic density level of a lane
type DensityClass uint16

const (
	DENSITY_LOW = DensityClass(iota + 1)
	DENSITY_MEDIUM
	DENSITY_HIGH
)

func (iotaIdx DensityClass) String() string {
	return [...]string{"low", "medium", "high"}[iotaIdx-1]
}

// ClassifyDensity returns density class for number of vehicles located on a lane of given length (meters).
//
// Ratio of vehicles to reference lengths below 1 is low, above 2 is high, anything between is medium.
// Empty lanes and lanes of non-positive length are low.
func ClassifyDensity(vehicles int, laneLength float64) DensityClass {
	if vehicles == 0 || laneLength <= 0 {
		return DENSITY_LOW
	}
	ratio := float64(vehicles) / (laneLength / DENSITY_REFERENCE_LENGTH)
	if ratio < 1 {
		return DENSITY_LOW
	}
	if ratio > 2 {
		return DENSITY_HIGH
	}
	return DENSITY_MEDIUM
}
