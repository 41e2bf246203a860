package services

import (
	"time"

	"github.com/google/uuid"

	"contact-relay/pkg/clients/googlechat"
	"contact-relay/pkg/localtime"
	"contact-relay/pkg/models"
)

const (
	cardTitle    = "New Form Submission"
	cardSubtitle = "Contact Form"
	cardIconURL  = "https://www.gstatic.com/images/icons/material/system/1x/description_black_24dp.png"

	consentYes = "✅ Yes, subscribed"
	consentNo  = "❌ No"
)

// CardBuilder turns validated contact submissions into Google Chat cards
type CardBuilder struct {
	formatter *localtime.Formatter
	now       func() time.Time
	newID     func() string
}

// CardBuilderOption customizes a CardBuilder
type CardBuilderOption func(*CardBuilder)

// WithClock overrides the time source used for the "Received At" widget
func WithClock(now func() time.Time) CardBuilderOption {
	return func(b *CardBuilder) {
		b.now = now
	}
}

// NewCardBuilder creates a builder that renders timestamps with formatter
func NewCardBuilder(formatter *localtime.Formatter, opts ...CardBuilderOption) *CardBuilder {
	b := &CardBuilder{
		formatter: formatter,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build maps a contact submission to a single-card chat payload.
// Sections are always Message, Contact Details, then the receipt time.
// Optional fields only produce a widget when non-empty.
func (b *CardBuilder) Build(data models.ContactFormData) googlechat.Payload {
	contact := []googlechat.Widget{
		googlechat.Labeled("Name", data.Name, "PERSON"),
		googlechat.Labeled("Email", data.Email, "EMAIL"),
	}

	if data.OrganizationName != "" {
		contact = append(contact, googlechat.Labeled("Organization", data.OrganizationName, "MEMBERSHIP"))
	}

	if data.OrganizationDescription != "" {
		about := googlechat.Labeled("About Organization", data.OrganizationDescription, "DESCRIPTION")
		about.DecoratedText.WrapText = true
		contact = append(contact, about)
	}

	if data.ReferralSource != "" {
		contact = append(contact, googlechat.Labeled("Referral Source", data.ReferralSource, "INVITE"))
	}

	consent := consentNo
	if data.MarketingConsent {
		consent = consentYes
	}
	contact = append(contact, googlechat.Labeled("Marketing Opt-In", consent, "EMAIL"))

	card := googlechat.Card{
		Header: &googlechat.CardHeader{
			Title:     cardTitle,
			Subtitle:  cardSubtitle,
			ImageURL:  cardIconURL,
			ImageType: "CIRCLE",
		},
		Sections: []googlechat.Section{
			{
				Header:  "Message",
				Widgets: []googlechat.Widget{googlechat.Paragraph(data.Message)},
			},
			{
				Header:  "Contact Details",
				Widgets: contact,
			},
			{
				Widgets: []googlechat.Widget{
					googlechat.Labeled("Received At", b.formatter.Format(b.now()), "CLOCK"),
				},
			},
		},
	}

	return googlechat.Payload{
		CardsV2: []googlechat.CardV2{{CardID: b.newID(), Card: card}},
	}
}
