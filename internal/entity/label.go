package entity

// Label is a concept reported by the label detector with its confidence in [0,100].
type Label struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// TranslatedLabel pairs a filtered label with its translated name.
type TranslatedLabel struct {
	Label
	TranslatedName string `json:"translated_name"`
}
