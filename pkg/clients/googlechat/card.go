package googlechat

// Payload is the body of a Google Chat incoming webhook message.
// Only the card widgets the relay emits are modeled.
type Payload struct {
	CardsV2 []CardV2 `json:"cardsV2"`
}

// CardV2 wraps a card with the id the chat client uses to de-duplicate it
type CardV2 struct {
	CardID string `json:"cardId"`
	Card   Card   `json:"card"`
}

type Card struct {
	Header   *CardHeader `json:"header,omitempty"`
	Sections []Section   `json:"sections"`
}

type CardHeader struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	ImageType string `json:"imageType,omitempty"` // SQUARE or CIRCLE
}

type Section struct {
	Header  string   `json:"header,omitempty"`
	Widgets []Widget `json:"widgets"`
}

// Widget holds exactly one of its fields
type Widget struct {
	TextParagraph *TextParagraph `json:"textParagraph,omitempty"`
	DecoratedText *DecoratedText `json:"decoratedText,omitempty"`
}

type TextParagraph struct {
	Text string `json:"text"`
}

type DecoratedText struct {
	TopLabel  string `json:"topLabel,omitempty"`
	Text      string `json:"text"`
	StartIcon *Icon  `json:"startIcon,omitempty"`
	WrapText  bool   `json:"wrapText,omitempty"`
}

type Icon struct {
	KnownIcon string `json:"knownIcon"`
}

// Paragraph returns a text paragraph widget
func Paragraph(text string) Widget {
	return Widget{TextParagraph: &TextParagraph{Text: text}}
}

// Labeled returns a decorated text widget with a top label and a known icon
func Labeled(label, text, knownIcon string) Widget {
	dt := &DecoratedText{TopLabel: label, Text: text}
	if knownIcon != "" {
		dt.StartIcon = &Icon{KnownIcon: knownIcon}
	}
	return Widget{DecoratedText: dt}
}
