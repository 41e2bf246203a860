package validation

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-relay/pkg/models"
)

func validInput() map[string]any {
	return map[string]any{
		"name":    "John Doe",
		"email":   "john.doe@example.com",
		"message": "hi",
	}
}

func issuesOf(t *testing.T, err error) []models.ValidationIssue {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Issues
}

func issueFor(issues []models.ValidationIssue, key string) (models.ValidationIssue, bool) {
	for _, issue := range issues {
		if len(issue.Path) == 1 && issue.Path[0] == key {
			return issue, true
		}
	}
	return models.ValidationIssue{}, false
}

func TestValidateContactForm_Valid(t *testing.T) {
	data, err := ValidateContactForm(validInput())
	require.NoError(t, err)

	assert.Equal(t, "John Doe", data.Name)
	assert.Equal(t, "john.doe@example.com", data.Email)
	assert.Equal(t, "hi", data.Message)
	assert.Empty(t, data.OrganizationName)
	assert.False(t, data.MarketingConsent)
}

func TestValidateContactForm_TrimsStrings(t *testing.T) {
	in := validInput()
	in["name"] = "  Jane  "
	in["email"] = " jane@example.com\n"
	in["organizationName"] = "\tAcme "

	data, err := ValidateContactForm(in)
	require.NoError(t, err)
	assert.Equal(t, "Jane", data.Name)
	assert.Equal(t, "jane@example.com", data.Email)
	assert.Equal(t, "Acme", data.OrganizationName)
}

func TestValidateContactForm_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		missing []string
	}{
		{"name only", []string{"name"}},
		{"email only", []string{"email"}},
		{"message only", []string{"message"}},
		{"all three", []string{"name", "email", "message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			for _, key := range tt.missing {
				delete(in, key)
			}

			_, err := ValidateContactForm(in)
			issues := issuesOf(t, err)
			require.Len(t, issues, len(tt.missing))

			for _, key := range tt.missing {
				issue, ok := issueFor(issues, key)
				require.True(t, ok, "missing issue for %s", key)
				assert.Equal(t, models.IssueTooSmall, issue.Code)
				assert.Contains(t, issue.Message, "is required")
			}
		})
	}
}

func TestValidateContactForm_WhitespaceOnlyIsRequired(t *testing.T) {
	in := validInput()
	in["message"] = "   "

	_, err := ValidateContactForm(in)
	issue, ok := issueFor(issuesOf(t, err), "message")
	require.True(t, ok)
	assert.Equal(t, "Message is required", issue.Message)
}

func TestValidateContactForm_EmptyEmailIsRequiredNotInvalid(t *testing.T) {
	in := validInput()
	in["email"] = ""

	_, err := ValidateContactForm(in)
	issues := issuesOf(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "Email is required", issues[0].Message)
}

func TestValidateContactForm_InvalidEmail(t *testing.T) {
	for _, email := range []string{"x", "john@", "@example.com", "john.example.com"} {
		t.Run(email, func(t *testing.T) {
			in := validInput()
			in["email"] = email

			_, err := ValidateContactForm(in)
			issues := issuesOf(t, err)
			require.Len(t, issues, 1)
			assert.Equal(t, models.IssueInvalidFormat, issues[0].Code)
			assert.Equal(t, "Please enter a valid email address", issues[0].Message)
		})
	}
}

func TestValidateContactForm_MaxLengths(t *testing.T) {
	for key, limit := range MaxLengths {
		t.Run(key, func(t *testing.T) {
			in := validInput()
			value := strings.Repeat("a", limit+1)
			if key == "email" {
				value = strings.Repeat("a", limit) + "@x.io"
			}
			in[key] = value

			_, err := ValidateContactForm(in)
			issue, ok := issueFor(issuesOf(t, err), key)
			require.True(t, ok)
			assert.Equal(t, models.IssueTooBig, issue.Code)
			assert.Contains(t, issue.Message, "must be")
			assert.Contains(t, issue.Message, " characters or less")
			assert.Contains(t, issue.Message, strconv.Itoa(limit))
		})
	}
}

func TestValidateContactForm_LongMalformedEmailReportsBoth(t *testing.T) {
	in := validInput()
	in["email"] = strings.Repeat("x", 300)

	_, err := ValidateContactForm(in)
	issues := issuesOf(t, err)
	require.Len(t, issues, 2)

	assert.Equal(t, []string{"email"}, issues[0].Path)
	assert.Equal(t, models.IssueTooBig, issues[0].Code)
	assert.Equal(t, "Email must be 254 characters or less", issues[0].Message)

	assert.Equal(t, []string{"email"}, issues[1].Path)
	assert.Equal(t, models.IssueInvalidFormat, issues[1].Code)
	assert.Equal(t, "Please enter a valid email address", issues[1].Message)
}

func TestValidateContactForm_MaxLengthCountsCharacters(t *testing.T) {
	in := validInput()
	in["name"] = strings.Repeat("é", MaxLengths["name"])

	_, err := ValidateContactForm(in)
	assert.NoError(t, err)
}

func TestValidateContactForm_WrongTypes(t *testing.T) {
	in := validInput()
	in["name"] = 42.0
	in["marketingConsent"] = 1.0

	_, err := ValidateContactForm(in)
	issues := issuesOf(t, err)
	require.Len(t, issues, 2)

	assert.Equal(t, []string{"name"}, issues[0].Path)
	assert.Equal(t, models.IssueInvalidType, issues[0].Code)
	assert.Equal(t, []string{"marketingConsent"}, issues[1].Path)
	assert.Equal(t, models.IssueInvalidType, issues[1].Code)
}

func TestValidateContactForm_ScenarioB(t *testing.T) {
	_, err := ValidateContactForm(map[string]any{"name": "", "email": "x", "message": "hi"})
	issues := issuesOf(t, err)
	require.Len(t, issues, 2)

	assert.Equal(t, "Name is required", issues[0].Message)
	assert.Equal(t, "Please enter a valid email address", issues[1].Message)
	assert.Contains(t, err.Error(), "name: Name is required")
}

func TestConsentValue(t *testing.T) {
	tests := []struct {
		in     any
		want   bool
		wantOK bool
	}{
		{"true", true, true},
		{"on", true, true},
		{"false", false, true},
		{"yes", false, true},
		{"", false, true},
		{nil, false, true},
		{true, true, true},
		{false, false, true},
		{1.0, false, false},
	}

	for _, tt := range tests {
		got, ok := ConsentValue(tt.in)
		assert.Equal(t, tt.want, got, "input %#v", tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %#v", tt.in)
	}
}

func TestValidateContactForm_ConsentFromCheckbox(t *testing.T) {
	in := validInput()
	in["marketingConsent"] = "on"

	data, err := ValidateContactForm(in)
	require.NoError(t, err)
	assert.True(t, data.MarketingConsent)
}

func TestValidateContactForm_IgnoresUnknownKeys(t *testing.T) {
	in := validInput()
	in["ip"] = "127.0.0.1"
	in["user_agent"] = "curl"
	in["bot-field"] = 12.0

	_, err := ValidateContactForm(in)
	assert.NoError(t, err)
}
