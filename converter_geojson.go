package osm2lanes

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
)

func toGeoJSONCoordinates(pts []GeoPoint) [][]float64 {
	pts2d := make([][]float64, len(pts))
	for i := range pts {
		pts2d[i] = []float64{pts[i].Lon, pts[i].Lat}
	}
	return pts2d
}

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(pts []GeoPoint) string {
	b, err := geojson.NewLineStringGeometry(toGeoJSONCoordinates(pts)).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// PrepareGeoJSONPolygon returns GeoJSON representation of Polygon with single (outer) ring
func PrepareGeoJSONPolygon(ring []GeoPoint) string {
	b, err := geojson.NewPolygonGeometry([][][]float64{toGeoJSONCoordinates(closeRing(copyLine(ring)))}).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// PrepareGeoJSONPoint returns GeoJSON representation of Point
func PrepareGeoJSONPoint(pt GeoPoint) string {
	b, err := geojson.NewPointGeometry([]float64{pt.Lon, pt.Lat}).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// laneFeatures returns centerline and boundary features of the lane
func laneFeatures(lane Lane, metadata Metadata, name string) []*geojson.Feature {
	centerLine := geojson.NewLineStringFeature(toGeoJSONCoordinates(lane.CenterLine))
	boundary := geojson.NewPolygonFeature([][][]float64{toGeoJSONCoordinates(lane.Boundary)})
	for kind, feature := range map[string]*geojson.Feature{"centerline": centerLine, "boundary": boundary} {
		feature.ID = fmt.Sprintf("%s:%s", kind, lane.ID)
		feature.SetProperty("kind", kind)
		feature.SetProperty("lane_id", lane.ID)
		feature.SetProperty("way_id", int64(lane.WayID))
		feature.SetProperty("section", lane.SectionIndex)
		feature.SetProperty("lane", lane.Index)
		feature.SetProperty("oneway", lane.Oneway)
		feature.SetProperty("length_meters", lane.Length)
		feature.SetProperty("name", name)
		feature.SetProperty("city", metadata.City)
		feature.SetProperty("postal_code", metadata.PostalCode)
		feature.SetProperty("country", metadata.Country)
	}
	return []*geojson.Feature{centerLine, boundary}
}

// ToGeoJSON returns FeatureCollection with centerline and boundary features of every lane of the table
func (table *SectionTable) ToGeoJSON(workers int, taper bool) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, lane := range table.Lanes(workers, taper) {
		metadata, _ := table.Metadata(lane.WayID)
		section, _ := table.Get(lane.WayID, lane.SectionIndex)
		for _, feature := range laneFeatures(lane, metadata, section.Name()) {
			fc.AddFeature(feature)
		}
	}
	return fc
}
