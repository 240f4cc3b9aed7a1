package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateValue(t *testing.T) {
	cases := []struct {
		name  string
		field Field
		value string
		want  string
	}{
		{"first name ok", FieldFirstName, "Jane", ""},
		{"first name with space ok", FieldFirstName, "Mary Jane", ""},
		{"first name empty", FieldFirstName, "", "This field is required"},
		{"first name whitespace only", FieldFirstName, "   ", "This field is required"},
		{"first name too short", FieldFirstName, "J", "Must be at least 2 characters"},
		{"first name with digits", FieldFirstName, "Jane3", "Only letters and spaces allowed"},
		{"last name with punctuation", FieldLastName, "O'Hara", "Only letters and spaces allowed"},
		{"email ok", FieldEmail, "jane@example.com", ""},
		{"email empty", FieldEmail, "", "Email is required"},
		{"email missing domain", FieldEmail, "jane@", "Please enter a valid email address"},
		{"email missing at", FieldEmail, "jane.example.com", "Please enter a valid email address"},
		{"company blank ok", FieldCompany, "", ""},
		{"company whitespace ok", FieldCompany, "  ", ""},
		{"company too short", FieldCompany, "A", "Company name must be at least 2 characters if provided"},
		{"company ok", FieldCompany, "Acme Ltd", ""},
		{"subject ok", FieldSubject, "Security Review", ""},
		{"subject empty", FieldSubject, "", "Subject is required"},
		{"subject too short", FieldSubject, "Hey", "Subject must be at least 5 characters"},
		{"message ok", FieldMessage, strings.Repeat("x", 25), ""},
		{"message empty", FieldMessage, "", "Message is required"},
		{"message too short", FieldMessage, "Too short", "Message must be at least 20 characters"},
		{"message at lower limit", FieldMessage, strings.Repeat("x", 20), ""},
		{"message at limit", FieldMessage, strings.Repeat("x", 1000), ""},
		{"message over limit", FieldMessage, strings.Repeat("x", 1001), "Message must be less than 1000 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validateValue(tc.field, tc.value))
		})
	}
}
