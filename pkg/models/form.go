package models

// ContactFormData is a contact submission that passed validation.
// Only the validation package constructs it; consumers treat it as read-only.
type ContactFormData struct {
	Name                    string `json:"name"`
	Email                   string `json:"email"`
	OrganizationName        string `json:"organizationName,omitempty"`
	OrganizationDescription string `json:"organizationDescription,omitempty"`
	ReferralSource          string `json:"referralSource,omitempty"`
	Message                 string `json:"message"`
	MarketingConsent        bool   `json:"marketingConsent"`
}

// ValidationIssue describes a single field-level validation failure
type ValidationIssue struct {
	Code    string   `json:"code"`
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// Issue codes
const (
	IssueInvalidType   = "invalid_type"
	IssueTooSmall      = "too_small"
	IssueTooBig        = "too_big"
	IssueInvalidFormat = "invalid_format"
)

// SubmissionEvent is the body the form-hosting platform posts when a form
// submission is created
type SubmissionEvent struct {
	Payload *SubmissionPayload `json:"payload"`
	Site    map[string]any     `json:"site,omitempty"`
}

// SubmissionPayload carries the captured form fields and their metadata
type SubmissionPayload struct {
	ID        string         `json:"id"`
	FormID    string         `json:"form_id"`
	FormName  string         `json:"form_name"`
	Number    int            `json:"number"`
	CreatedAt string         `json:"created_at"`
	SiteURL   string         `json:"site_url"`
	SiteName  string         `json:"site_name"`
	Data      map[string]any `json:"data"`
}
