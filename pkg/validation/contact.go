package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"contact-relay/pkg/models"
)

// MaxLengths holds the maximum character count for each contact form field
var MaxLengths = map[string]int{
	"name":                    100,
	"email":                   254, // RFC 5321
	"organizationName":        150,
	"organizationDescription": 2000,
	"referralSource":          100,
	"message":                 5000,
}

// contactForm mirrors models.ContactFormData with the rules attached.
// Keep the max values in sync with MaxLengths. The email format rule is
// checked separately so that an overlong address also reports its format.
type contactForm struct {
	Name                    string `json:"name" validate:"required,max=100"`
	Email                   string `json:"email" validate:"required,max=254"`
	OrganizationName        string `json:"organizationName" validate:"max=150"`
	OrganizationDescription string `json:"organizationDescription" validate:"max=2000"`
	ReferralSource          string `json:"referralSource" validate:"max=100"`
	Message                 string `json:"message" validate:"required,max=5000"`
}

type field struct {
	key   string
	label string
}

// declaration order, also the order issues are reported in
var contactFields = []field{
	{"name", "Name"},
	{"email", "Email"},
	{"organizationName", "Organization name"},
	{"organizationDescription", "Organization description"},
	{"referralSource", "Referral source"},
	{"message", "Message"},
}

const (
	consentKey         = "marketingConsent"
	emailFormatMessage = "Please enter a valid email address"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError is returned when a submission violates one or more field rules
type ValidationError struct {
	Issues []models.ValidationIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, fmt.Sprintf("%s: %s", strings.Join(issue.Path, "."), issue.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ValidateContactForm checks raw submission data against the contact form rules.
// String fields are trimmed before any rule runs. Every issue found is
// returned in a *ValidationError, ordered by field; one field may carry
// several issues, for example an address that is both too long and malformed.
func ValidateContactForm(raw map[string]any) (models.ContactFormData, error) {
	issues := map[string][]models.ValidationIssue{}
	values := map[string]string{}

	for _, f := range contactFields {
		s, ok := stringValue(raw[f.key])
		if !ok {
			issues[f.key] = append(issues[f.key], newIssue(models.IssueInvalidType, f.key, "Invalid input: expected string"))
			continue
		}
		values[f.key] = s
	}

	consent, ok := ConsentValue(raw[consentKey])
	if !ok {
		issues[consentKey] = append(issues[consentKey], newIssue(models.IssueInvalidType, consentKey, "Invalid input: expected boolean"))
	}

	form := contactForm{
		Name:                    values["name"],
		Email:                   values["email"],
		OrganizationName:        values["organizationName"],
		OrganizationDescription: values["organizationDescription"],
		ReferralSource:          values["referralSource"],
		Message:                 values["message"],
	}

	if err := validate.Struct(form); err != nil {
		for _, fe := range fieldErrors(err) {
			key := fe.Field()
			if len(issues[key]) > 0 {
				continue
			}
			issues[key] = append(issues[key], translate(fe))
		}
	}

	// format runs only on a non-empty value and is independent of max
	if form.Email != "" {
		if err := validate.Var(form.Email, "email"); err != nil && len(fieldErrors(err)) > 0 {
			issues["email"] = append(issues["email"], newIssue(models.IssueInvalidFormat, "email", emailFormatMessage))
		}
	}

	if len(issues) > 0 {
		ordered := make([]models.ValidationIssue, 0, len(issues))
		for _, f := range contactFields {
			ordered = append(ordered, issues[f.key]...)
		}
		ordered = append(ordered, issues[consentKey]...)
		return models.ContactFormData{}, &ValidationError{Issues: ordered}
	}

	return models.ContactFormData{
		Name:                    form.Name,
		Email:                   form.Email,
		OrganizationName:        form.OrganizationName,
		OrganizationDescription: form.OrganizationDescription,
		ReferralSource:          form.ReferralSource,
		Message:                 form.Message,
		MarketingConsent:        consent,
	}, nil
}

// ConsentValue normalizes a marketing consent value as submitted by an HTML
// checkbox or a JSON client. Strings "true" and "on" mean true, any other
// string means false, booleans pass through and a missing value is false.
// ok is false for any other type.
func ConsentValue(v any) (consent bool, ok bool) {
	switch val := v.(type) {
	case nil:
		return false, true
	case string:
		return val == "true" || val == "on", true
	case bool:
		return val, true
	default:
		return false, false
	}
}

func stringValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", true
	case string:
		return strings.TrimSpace(val), true
	default:
		return "", false
	}
}

func fieldErrors(err error) validator.ValidationErrors {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// only reachable when the rules themselves are broken
		panic(fmt.Sprintf("validation: contact form rules: %v", err))
	}
	return fieldErrs
}

func translate(fe validator.FieldError) models.ValidationIssue {
	key := fe.Field()
	label := labelFor(key)

	switch fe.Tag() {
	case "required":
		return newIssue(models.IssueTooSmall, key, label+" is required")
	case "max":
		return newIssue(models.IssueTooBig, key, fmt.Sprintf("%s must be %s characters or less", label, fe.Param()))
	default:
		return newIssue(fe.Tag(), key, fmt.Sprintf("%s is invalid", label))
	}
}

func labelFor(key string) string {
	for _, f := range contactFields {
		if f.key == key {
			return f.label
		}
	}
	return key
}

func newIssue(code, key, message string) models.ValidationIssue {
	return models.ValidationIssue{Code: code, Path: []string{key}, Message: message}
}
