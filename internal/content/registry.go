package content

// SocialNetworkKeys is the fixed value set for the social_network key field.
var SocialNetworkKeys = []string{"facebook", "telegram", "youtube", "instagram", "location", "notfound"}

// Registry returns the descriptor table for every content entity served by
// the generic CRUD engine. Pages and users are typed separately.
func Registry() []Descriptor {
	return []Descriptor{
		{
			Name:       "news",
			Collection: "news",
			Singular:   "news",
			Plural:     "news",
			Localized:  []string{"title", "description"},
			SingleMedia: []MediaField{
				{Name: "photo", Kind: MediaImage},
			},
			Required:      []string{"title_uz"},
			SortByRecency: true,
		},
		{
			Name:       "announcement",
			Collection: "announcements",
			Singular:   "announcement",
			Plural:     "announcements",
			Localized:  []string{"title", "description"},
			SingleMedia: []MediaField{
				{Name: "photo", Kind: MediaImage},
			},
			Required:      []string{"title_uz"},
			SortByRecency: true,
		},
		{
			Name:       "banner",
			Collection: "banners",
			Singular:   "banner",
			Plural:     "banners",
			Localized:  []string{"title"},
			SingleMedia: []MediaField{
				{Name: "photo", Kind: MediaImage},
				{Name: "video", Kind: MediaImageVideo},
			},
			Required:      []string{"photo"},
			HasActiveFlag: true,
			SortByRecency: true,
		},
		{
			Name:       "leader",
			Collection: "leaders",
			Singular:   "leader",
			Plural:     "leaders",
			Localized:  []string{"full_name", "position", "description"},
			Plain:      []string{"phone", "email", "reception_days"},
			SingleMedia: []MediaField{
				{Name: "photo", Kind: MediaImage},
			},
			Required: []string{"full_name_uz"},
		},
		{
			Name:       "program",
			Collection: "programs",
			Singular:   "program",
			Plural:     "programs",
			Localized:  []string{"title", "description"},
			SingleMedia: []MediaField{
				{Name: "photo", Kind: MediaImage},
			},
			Required: []string{"title_uz"},
		},
		{
			Name:       "technology",
			Collection: "technologies",
			Singular:   "technology",
			Plural:     "technologies",
			Localized:  []string{"title", "description"},
			SingleMedia: []MediaField{
				{Name: "photo", Kind: MediaImage},
			},
			Required: []string{"title_uz"},
		},
		{
			Name:          "contact",
			Collection:    "contacts",
			Singular:      "contact",
			Plural:        "contacts",
			Localized:     []string{"address", "working_hours"},
			Plain:         []string{"phone", "phone_faks", "email"},
			Required:      []string{"phone"},
			HasActiveFlag: true,
		},
		{
			Name:       "faq",
			Collection: "faqs",
			Singular:   "faq",
			Plural:     "faqs",
			Localized:  []string{"question", "answer"},
			Required:   []string{"question_uz"},
		},
		{
			Name:       "location",
			Collection: "locations",
			Singular:   "location",
			Plural:     "locations",
			Localized:  []string{"name", "address"},
			Plain:      []string{"link", "latitude", "longitude"},
			Required:   []string{"name_uz"},
		},
		{
			Name:       "opendata",
			Collection: "opendata",
			Singular:   "opendata",
			Plural:     "opendata",
			Localized:  []string{"title"},
			SingleMedia: []MediaField{
				{Name: "file", Kind: MediaDocument},
			},
			Required:      []string{"title_uz"},
			SortByRecency: true,
		},
		{
			Name:       "socialnetwork",
			Collection: "social_networks",
			Singular:   "socialNetwork",
			Plural:     "socialNetworks",
			Plain:      []string{"name", "link", "key"},
			Required:   []string{"name", "link"},
			Enums: map[string][]string{
				"key": SocialNetworkKeys,
			},
			EnumDefaults: map[string]string{
				"key": "notfound",
			},
		},
		{
			Name:       "generalabout",
			Collection: "general_about",
			Singular:   "generalAbout",
			Plural:     "generalAbouts",
			Localized:  []string{"title", "description"},
			SingleMedia: []MediaField{
				{Name: "photo", Kind: MediaImage},
			},
			Required: []string{"title_uz"},
		},
		{
			Name:       "generalcommunication",
			Collection: "general_communications",
			Singular:   "generalCommunication",
			Plural:     "generalCommunications",
			Localized:  []string{"title", "description"},
			Plain:      []string{"phone", "email"},
			Required:   []string{"title_uz"},
		},
		{
			Name:       "gallery",
			Collection: "galleries",
			Singular:   "gallery",
			Plural:     "galleries",
			Localized:  []string{"title"},
			ListMedia:  &MediaField{Name: "photos", Kind: MediaImageVideo},
			Required:   []string{"title_uz"},
			SortByRecency: true,
		},
	}
}
