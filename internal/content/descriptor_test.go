package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizedKeysExpansion(t *testing.T) {
	desc := Descriptor{Localized: []string{"title"}}

	assert.Equal(t, []string{"title_uz", "title_ru", "title_en"}, desc.LocalizedKeys())
}

func TestAllowedFieldRejectsMediaAndUnknown(t *testing.T) {
	desc := Descriptor{
		Localized:     []string{"title"},
		Plain:         []string{"phone"},
		Bools:         []string{"visible"},
		HasActiveFlag: true,
		SingleMedia:   []MediaField{{Name: "photo", Kind: MediaImage}},
	}

	assert.True(t, desc.AllowedField("title_ru"))
	assert.True(t, desc.AllowedField("phone"))
	assert.True(t, desc.AllowedField("visible"))
	assert.True(t, desc.AllowedField("is_active"))

	// Media keys come from uploads, never from raw values.
	assert.False(t, desc.AllowedField("photo"))
	assert.False(t, desc.AllowedField("title"))
	assert.False(t, desc.AllowedField("_id"))
}

func TestEnumValueDefaultsUnknownCandidates(t *testing.T) {
	desc := Descriptor{
		Enums:        map[string][]string{"key": SocialNetworkKeys},
		EnumDefaults: map[string]string{"key": "notfound"},
	}

	assert.Equal(t, "telegram", desc.EnumValue("key", "telegram"))
	assert.Equal(t, "notfound", desc.EnumValue("key", "myspace"))
	assert.Equal(t, "notfound", desc.EnumValue("key", ""))
	// Unconstrained fields pass through.
	assert.Equal(t, "anything", desc.EnumValue("name", "anything"))
}

func TestRegistryNounsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, desc := range Registry() {
		assert.False(t, seen[desc.Name], "duplicate route noun %q", desc.Name)
		seen[desc.Name] = true
		assert.NotEmpty(t, desc.Collection)
		assert.NotEmpty(t, desc.Singular)
		assert.NotEmpty(t, desc.Plural)
	}
}
