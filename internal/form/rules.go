package form

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field identifies a contact form input.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldCompany   Field = "company"
	FieldSubject   Field = "subject"
	FieldMessage   Field = "message"
)

var allFields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldCompany,
	FieldSubject,
	FieldMessage,
}

var namePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("name_chars", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	return v
}

// varTags hold the per-field rules applied after the required check. The
// required check is handled separately so that whitespace-only input is
// rejected before length rules run.
var varTags = map[Field]string{
	FieldFirstName: "min=2,name_chars",
	FieldLastName:  "min=2,name_chars",
	FieldEmail:     "email",
	FieldCompany:   "min=2",
	FieldSubject:   "min=5",
	FieldMessage:   "min=20,max=1000",
}

// validateValue returns the error message for a single field value, or ""
// when the value is acceptable. The optional company field passes when left
// blank.
func validateValue(field Field, value string) string {
	if strings.TrimSpace(value) == "" {
		if field == FieldCompany {
			return ""
		}
		return requiredMessage(field)
	}
	if err := validate.Var(value, varTags[field]); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok || len(errs) == 0 {
			return "Invalid value"
		}
		return ruleMessage(field, errs[0].Tag())
	}
	return ""
}

func requiredMessage(field Field) string {
	switch field {
	case FieldEmail:
		return "Email is required"
	case FieldSubject:
		return "Subject is required"
	case FieldMessage:
		return "Message is required"
	}
	return "This field is required"
}

func ruleMessage(field Field, tag string) string {
	switch field {
	case FieldFirstName, FieldLastName:
		if tag == "name_chars" {
			return "Only letters and spaces allowed"
		}
		return "Must be at least 2 characters"
	case FieldEmail:
		return "Please enter a valid email address"
	case FieldCompany:
		return "Company name must be at least 2 characters if provided"
	case FieldSubject:
		return "Subject must be at least 5 characters"
	case FieldMessage:
		if tag == "max" {
			return "Message must be less than 1000 characters"
		}
		return "Message must be at least 20 characters"
	}
	return "Invalid value"
}
