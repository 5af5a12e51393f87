package domain

import "fmt"

// FacilityTag is a closed vocabulary of venue facilities. FacilityOther is
// the escape value for anything outside the vocabulary.
type FacilityTag string

const (
	FacilityWifi            FacilityTag = "wifi"
	FacilityParking         FacilityTag = "parking"
	FacilityCatering        FacilityTag = "catering"
	FacilityAVEquipment     FacilityTag = "av_equipment"
	FacilityStage           FacilityTag = "stage"
	FacilityAirConditioning FacilityTag = "air_conditioning"
	FacilityOther           FacilityTag = "other"
)

var knownFacilities = map[FacilityTag]struct{}{
	FacilityWifi:            {},
	FacilityParking:         {},
	FacilityCatering:        {},
	FacilityAVEquipment:     {},
	FacilityStage:           {},
	FacilityAirConditioning: {},
	FacilityOther:           {},
}

func ParseFacilityTag(s string) (FacilityTag, error) {
	tag := FacilityTag(s)
	if _, ok := knownFacilities[tag]; !ok {
		return "", fmt.Errorf("%w: unknown facility %q", ErrValidation, s)
	}
	return tag, nil
}

// ParseFacilityTags parses and deduplicates a list of facility names,
// preserving first-seen order.
func ParseFacilityTags(values []string) ([]FacilityTag, error) {
	seen := make(map[FacilityTag]struct{}, len(values))
	tags := make([]FacilityTag, 0, len(values))
	for _, v := range values {
		tag, err := ParseFacilityTag(v)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags, nil
}

func FacilityStrings(tags []FacilityTag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}
