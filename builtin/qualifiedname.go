package builtin

// QualifiedName pairs a namespace index with a name. A NamespaceIndex of 0
// is omitted from JSON (OPC UA Part 6).
type QualifiedName struct {
	NamespaceIndex uint16
	Name           string
}

// LocalizedText carries an optional locale and an optional text, each
// independently nullable (OPC UA Part 6). A nil pointer means the field
// is absent; a non-nil pointer to "" means present-but-empty.
type LocalizedText struct {
	Locale *string
	Text   *string
}

// NewLocalizedText returns a LocalizedText with both fields set.
func NewLocalizedText(locale, text string) LocalizedText {
	return LocalizedText{Locale: &locale, Text: &text}
}

// TextOnly returns a LocalizedText with only Text set.
func TextOnly(text string) LocalizedText {
	return LocalizedText{Text: &text}
}
