package content

import "fmt"

// MediaKind selects the upload policy applied to a media field.
type MediaKind string

const (
	MediaImage      MediaKind = "image"
	MediaImageVideo MediaKind = "image_video"
	MediaDocument   MediaKind = "document"
)

// MediaField describes one media-bearing field of an entity.
type MediaField struct {
	Name string
	Kind MediaKind
}

// Descriptor is the full configuration of one content entity type. The
// generic service, repository and handler are all parameterized by it, so
// adding an entity means adding a table row, not a package.
type Descriptor struct {
	// Name is the route noun: /api/<Name>/create and friends.
	Name string
	// Collection is the mongo collection.
	Collection string
	// Singular and Plural are the envelope keys for one record and lists.
	Singular string
	Plural   string

	// Localized lists logical field names stored flattened as
	// <field>_uz, <field>_ru, <field>_en.
	Localized []string
	// Plain lists passthrough string fields (phone, email, link...).
	Plain []string
	// Bools lists boolean fields (is_active...).
	Bools []string
	// Ints lists integer fields (order...).
	Ints []string

	// SingleMedia are fields holding one blob key each (photo, video, file).
	SingleMedia []MediaField
	// ListMedia, when set, is the ordered multi-blob field (photos).
	ListMedia *MediaField

	// Required names stored fields that must be non-empty on create.
	Required []string
	// Enums constrains a plain field to a value set; EnumDefaults supplies
	// the value used when the input is absent or outside the set.
	Enums        map[string][]string
	EnumDefaults map[string]string

	// HasActiveFlag adds the is_active field and the getActive endpoint.
	HasActiveFlag bool
	// SortByRecency returns lists newest-first instead of store order.
	SortByRecency bool
}

// LocalizedKeys expands the logical localized field names into the stored
// per-language keys.
func (d Descriptor) LocalizedKeys() []string {
	keys := make([]string, 0, len(d.Localized)*3)
	for _, field := range d.Localized {
		for _, lang := range []string{"uz", "ru", "en"} {
			keys = append(keys, fmt.Sprintf("%s_%s", field, lang))
		}
	}
	return keys
}

// MediaFieldNames lists every media-bearing field, single and list.
func (d Descriptor) MediaFieldNames() []string {
	names := make([]string, 0, len(d.SingleMedia)+1)
	for _, m := range d.SingleMedia {
		names = append(names, m.Name)
	}
	if d.ListMedia != nil {
		names = append(names, d.ListMedia.Name)
	}
	return names
}

// AllowedField reports whether a stored field name may be written through
// the create/update API. Media fields are excluded: they are set from
// uploaded files only, never from raw client values.
func (d Descriptor) AllowedField(name string) bool {
	for _, key := range d.LocalizedKeys() {
		if key == name {
			return true
		}
	}
	for _, key := range d.Plain {
		if key == name {
			return true
		}
	}
	for _, key := range d.Bools {
		if key == name {
			return true
		}
	}
	for _, key := range d.Ints {
		if key == name {
			return true
		}
	}
	if d.HasActiveFlag && name == "is_active" {
		return true
	}
	return false
}

// EnumValue validates a candidate enum value for field, returning the
// default when the candidate is absent or not in the value set.
func (d Descriptor) EnumValue(field, candidate string) string {
	values, ok := d.Enums[field]
	if !ok {
		return candidate
	}
	for _, v := range values {
		if candidate == v {
			return candidate
		}
	}
	return d.EnumDefaults[field]
}
