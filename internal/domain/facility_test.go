package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFacilityTag(t *testing.T) {
	tag, err := ParseFacilityTag("wifi")
	require.NoError(t, err)
	assert.Equal(t, FacilityWifi, tag)

	_, err = ParseFacilityTag("swimming_pool")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseFacilityTags_Deduplicates(t *testing.T) {
	tags, err := ParseFacilityTags([]string{"wifi", "parking", "wifi", "stage"})

	require.NoError(t, err)
	assert.Equal(t, []FacilityTag{FacilityWifi, FacilityParking, FacilityStage}, tags)
}

func TestParseFacilityTags_UnknownFails(t *testing.T) {
	_, err := ParseFacilityTags([]string{"wifi", "jacuzzi"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFacilityStrings(t *testing.T) {
	out := FacilityStrings([]FacilityTag{FacilityCatering, FacilityOther})
	assert.Equal(t, []string{"catering", "other"}, out)

	assert.Empty(t, FacilityStrings(nil))
}
