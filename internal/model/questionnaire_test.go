package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestAnswer_HasText(t *testing.T) {
	assert.False(t, (*Answer)(nil).HasText(), "nil answer has no text")
	assert.False(t, (&Answer{}).HasText(), "nil text pointer")
	assert.False(t, (&Answer{Text: strPtr("")}).HasText(), "empty text")
	assert.False(t, (&Answer{Text: strPtr("   ")}).HasText(), "whitespace text")
	assert.False(t, (&Answer{Text: strPtr("missing")}).HasText(), "missing sentinel")
	assert.False(t, (&Answer{Text: strPtr("Missing")}).HasText(), "missing sentinel is case-insensitive")
	assert.True(t, (&Answer{Text: strPtr("engineering")}).HasText())
}

func TestAnswer_HasValue(t *testing.T) {
	v := 3
	assert.False(t, (*Answer)(nil).HasValue())
	assert.False(t, (&Answer{}).HasValue())
	assert.True(t, (&Answer{Value: &v}).HasValue())
}

func TestListing_HasFeature(t *testing.T) {
	l := &Listing{FeatureIDs: []string{"feature:ac", "feature:balcony"}}
	assert.True(t, l.HasFeature("feature:ac"))
	assert.False(t, l.HasFeature("feature:parking"))
	assert.False(t, (&Listing{}).HasFeature("feature:ac"))
}

func TestPreference_WantsArea(t *testing.T) {
	assert.False(t, (&Preference{}).WantsArea(), "nil area is no constraint")
	assert.False(t, (&Preference{Area: strPtr("")}).WantsArea(), "empty area is no constraint")
	assert.True(t, (&Preference{Area: strPtr("Ramot")}).WantsArea())
}
