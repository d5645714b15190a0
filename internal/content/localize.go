package content

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"govportal/internal/models"
)

// Localize projects a raw document into one language. Each logical field
// in fields is read from <field>_<lang>, where an unsupported lang falls
// back to uz. The language-suffixed source keys are dropped from the
// output; everything else (media, timestamps, plain fields) passes through
// untouched. The input document is not mutated.
func Localize(doc bson.M, lang string, fields []string) bson.M {
	resolved := models.NormalizeLang(lang)

	suffixed := make(map[string]bool, len(fields)*3)
	for _, field := range fields {
		for _, l := range models.SupportedLanguages {
			suffixed[fmt.Sprintf("%s_%s", field, l)] = true
		}
	}

	out := make(bson.M, len(doc))
	for key, value := range doc {
		if suffixed[key] {
			continue
		}
		out[key] = value
	}

	for _, field := range fields {
		// A missing language variant projects as nil, never an error.
		out[field] = doc[fmt.Sprintf("%s_%s", field, resolved)]
	}

	return out
}

// LocalizeAll projects a slice of documents, preserving order.
func LocalizeAll(docs []bson.M, lang string, fields []string) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Localize(doc, lang, fields))
	}
	return out
}
