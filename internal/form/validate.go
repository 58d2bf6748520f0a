package form

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Errors is the set of field names that failed validation
type Errors map[string]struct{}

// Has reports whether field failed
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Empty reports whether validation passed
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Fields returns the failing field names in sorted order
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (e Errors) Error() string {
	return "invalid fields: " + strings.Join(e.Fields(), ", ")
}

// Validator checks a form before it is turned into a store request
type Validator struct {
	validate     *validator.Validate
	requireState bool
}

// NewValidator creates a validator. When requireState is set the state
// field must be non-blank as well.
func NewValidator(requireState bool) *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})

	// Registration only fails on empty tags or nil funcs
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return ValidateEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		phone := strings.TrimSpace(fl.Field().String())
		return phone == "" || ValidatePhone(phone)
	})

	return &Validator{validate: v, requireState: requireState}
}

// Validate runs every rule and collects all failures
func (v *Validator) Validate(f Form) Errors {
	errs := Errors{}

	if err := v.validate.Struct(f); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				errs[fe.Field()] = struct{}{}
			}
		}
	}

	if v.requireState {
		if err := v.validate.Var(f.State, "notblank"); err != nil {
			errs[FieldState] = struct{}{}
		}
	}

	return errs
}

// RequiresState reports whether the state field is enforced
func (v *Validator) RequiresState() bool {
	return v.requireState
}

var defaultValidator = NewValidator(false)

// Validate checks f with the default rules
func Validate(f Form) Errors {
	return defaultValidator.Validate(f)
}

// ValidateEmail reports whether email has the local@domain.tld shape
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ValidatePhone reports whether phone is exactly ten decimal digits
func ValidatePhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
