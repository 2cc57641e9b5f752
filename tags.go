package osm2lanes

import (
	"github.com/paulmach/osm"
)

var (
	junctionTypes = map[string]struct{}{
		"circular":   {},
		"roundabout": {},
	}

	onewayForward = map[string]struct{}{
		"yes":  {},
		"1":    {},
		"true": {},
	}

	onewayBidirectional = map[string]struct{}{
		"no":    {},
		"0":     {},
		"false": {},
	}

	onewayBackward = map[string]struct{}{
		"-1":      {},
		"reverse": {},
	}

	onewayReversible = map[string]struct{}{
		"reversible":  {},
		"alternating": {},
	}
)

// onewayKind is the interpretation of `oneway` and `junction` tags
type onewayKind uint16

const (
	ONEWAY_NO = onewayKind(iota + 1)
	ONEWAY_FORWARD
	ONEWAY_BACKWARD
	ONEWAY_UNHANDLED
)

func (iotaIdx onewayKind) String() string {
	return [...]string{"no", "forward", "backward", "unhandled"}[iotaIdx-1]
}

// parseOneway returns direction of traffic for given tags.
// Reversible and alternating ways depend on time conditions, so they are considered bidirectional.
func parseOneway(tags osm.Tags) onewayKind {
	onewayText := tags.Find("oneway")
	if onewayText == "" {
		if _, ok := junctionTypes[tags.Find("junction")]; ok {
			return ONEWAY_FORWARD
		}
		return ONEWAY_NO
	}
	if _, ok := onewayForward[onewayText]; ok {
		return ONEWAY_FORWARD
	}
	if _, ok := onewayBidirectional[onewayText]; ok {
		return ONEWAY_NO
	}
	if _, ok := onewayBackward[onewayText]; ok {
		return ONEWAY_BACKWARD
	}
	if _, ok := onewayReversible[onewayText]; ok {
		return ONEWAY_NO
	}
	return ONEWAY_UNHANDLED
}
