package models

// LocalizedText is the logical multi-language string field. Content
// collections store it flattened into <field>_uz / <field>_ru / <field>_en
// keys; pages keep it as a nested document. Both layouts resolve through
// the same language selection rule.
type LocalizedText struct {
	Uz string `json:"uz" bson:"uz"`
	Ru string `json:"ru" bson:"ru"`
	En string `json:"en" bson:"en"`
}

// SupportedLanguages in resolution priority for fallback.
var SupportedLanguages = []string{"uz", "ru", "en"}

// NormalizeLang maps any unsupported language code to "uz".
func NormalizeLang(lang string) string {
	switch lang {
	case "uz", "ru", "en":
		return lang
	default:
		return "uz"
	}
}

// Resolve picks the variant for lang, falling back to uz for unknown codes.
func (t LocalizedText) Resolve(lang string) string {
	switch NormalizeLang(lang) {
	case "ru":
		return t.Ru
	case "en":
		return t.En
	default:
		return t.Uz
	}
}
