package osm2lanes

type HighwayType uint16

const (
	HIGHWAY_MOTORWAY = HighwayType(iota + 1)
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_TRUNK
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_TERTIARY
	HIGHWAY_TERTIARY_LINK
	HIGHWAY_RESIDENTIAL
	HIGHWAY_RESIDENTIAL_LINK
	HIGHWAY_LIVING_STREET
	HIGHWAY_SERVICE
	HIGHWAY_SERVICES
	HIGHWAY_CYCLEWAY
	HIGHWAY_FOOTWAY
	HIGHWAY_PEDESTRIAN
	HIGHWAY_STEPS
	HIGHWAY_TRACK
	HIGHWAY_UNCLASSIFIED
	HIGHWAY_ROAD
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "residential_link", "living_street", "service", "services", "cycleway", "footway", "pedestrian", "steps", "track", "unclassified", "road"}[iotaIdx-1]
}

func getHighwayType(str string) HighwayType {
	if found, ok := highwaysTypes[str]; ok {
		return found
	}
	return 0
}

// Way filter presets
const (
	PRESET_STREETS  = "streets"
	PRESET_HIGHWAYS = "highways"
)

// presetTags returns `highway` tag values of the preset. Unknown preset gives nil
func presetTags(preset string) []string {
	var types []HighwayType
	switch preset {
	case PRESET_STREETS:
		types = streetHighways
	case PRESET_HIGHWAYS:
		types = make([]HighwayType, 0, len(highwaysTypes))
		for t := HIGHWAY_MOTORWAY; t <= HIGHWAY_ROAD; t++ {
			types = append(types, t)
		}
	default:
		return nil
	}
	tags := make([]string, len(types))
	for i, t := range types {
		tags[i] = t.String()
	}
	return tags
}

var (
	// Roads for motor vehicles
	streetHighways = []HighwayType{
		HIGHWAY_MOTORWAY,
		HIGHWAY_MOTORWAY_LINK,
		HIGHWAY_TRUNK,
		HIGHWAY_TRUNK_LINK,
		HIGHWAY_PRIMARY,
		HIGHWAY_PRIMARY_LINK,
		HIGHWAY_SECONDARY,
		HIGHWAY_SECONDARY_LINK,
		HIGHWAY_TERTIARY,
		HIGHWAY_TERTIARY_LINK,
		HIGHWAY_RESIDENTIAL,
		HIGHWAY_RESIDENTIAL_LINK,
		HIGHWAY_LIVING_STREET,
		HIGHWAY_UNCLASSIFIED,
		HIGHWAY_ROAD,
	}

	highwaysTypes = map[string]HighwayType{
		"motorway":         HIGHWAY_MOTORWAY,
		"motorway_link":    HIGHWAY_MOTORWAY_LINK,
		"trunk":            HIGHWAY_TRUNK,
		"trunk_link":       HIGHWAY_TRUNK_LINK,
		"primary":          HIGHWAY_PRIMARY,
		"primary_link":     HIGHWAY_PRIMARY_LINK,
		"secondary":        HIGHWAY_SECONDARY,
		"secondary_link":   HIGHWAY_SECONDARY_LINK,
		"tertiary":         HIGHWAY_TERTIARY,
		"tertiary_link":    HIGHWAY_TERTIARY_LINK,
		"residential":      HIGHWAY_RESIDENTIAL,
		"residential_link": HIGHWAY_RESIDENTIAL_LINK,
		"living_street":    HIGHWAY_LIVING_STREET,
		"service":          HIGHWAY_SERVICE,
		"services":         HIGHWAY_SERVICES,
		"cycleway":         HIGHWAY_CYCLEWAY,
		"footway":          HIGHWAY_FOOTWAY,
		"pedestrian":       HIGHWAY_PEDESTRIAN,
		"steps":            HIGHWAY_STEPS,
		"track":            HIGHWAY_TRACK,
		"unclassified":     HIGHWAY_UNCLASSIFIED,
		"road":             HIGHWAY_ROAD,
	}
)
