// Package recipe contains utilities for reading and validating recipe forms.
package recipe

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ingredientSeparator = ","
	formLineSeparator   = "\r\n"
)

// Countries populates the country select on the recipe forms.
var Countries = []string{
	"Argentina", "Australia", "Austria", "Belgium", "Brazil", "Canada", "Chile",
	"China", "Colombia", "Croatia", "Denmark", "Egypt", "Ethiopia", "Finland",
	"France", "Germany", "Greece", "Hungary", "India", "Indonesia", "Iran",
	"Ireland", "Israel", "Italy", "Jamaica", "Japan", "Korea", "Lebanon",
	"Malaysia", "Mexico", "Morocco", "Netherlands", "Nigeria", "Norway", "Peru",
	"Philippines", "Poland", "Portugal", "Russia", "Spain", "Sweden",
	"Switzerland", "Thailand", "Turkey", "Ukraine", "United Kingdom",
	"United States", "Vietnam", "Other",
}

var ErrInvalidForm = errors.New("invalid recipe form")

// Form is a submitted recipe as typed by the user. Ingredients holds one
// ingredient per line.
type Form struct {
	Title       string `validate:"min=1,max=200"`
	Country     string `validate:"required,country"`
	Ingredients string `validate:"min=5"`
	Recipe      string `validate:"min=30"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("country", func(fl validator.FieldLevel) bool {
		return slices.Contains(Countries, fl.Field().String())
	})
	return v
}

// ReadForm pulls the recipe fields out of a parsed form submission.
func ReadForm(r *http.Request) Form {
	return Form{
		Title:       r.PostFormValue("title"),
		Country:     r.PostFormValue("country"),
		Ingredients: r.PostFormValue("ingredients"),
		Recipe:      r.PostFormValue("recipe"),
	}
}

// FieldErrors lists one user-facing message per failing field.
type FieldErrors []string

func (e FieldErrors) Error() string {
	return ErrInvalidForm.Error() + ": " + strings.Join(e, "; ")
}

func (e FieldErrors) Is(target error) bool {
	return target == ErrInvalidForm
}

// Validate returns FieldErrors when any field fails its rule.
func (f Form) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validating recipe: %w", err)
	}

	msgs := make(FieldErrors, 0, len(validationErrs))
	for _, e := range validationErrs {
		msgs = append(msgs, fieldMessage(e))
	}
	return msgs
}

// Messages returns the field messages carried by err, or a single generic
// message for any other error.
func Messages(err error) []string {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return []string{"The recipe could not be read, please try again"}
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "country":
		return "Country must be chosen from the list"
	default:
		return fmt.Sprintf("%s is required", e.Field())
	}
}

// StoredIngredients encodes the form's ingredients for the database.
func (f Form) StoredIngredients() string {
	return JoinIngredients(f.Ingredients)
}

// JoinIngredients turns one-per-line form input into the comma-joined storage
// form, trimming commas left by leading or trailing blank lines.
func JoinIngredients(raw string) string {
	lines := strings.Split(raw, formLineSeparator)
	return strings.Trim(strings.Join(lines, ingredientSeparator), ingredientSeparator)
}

// SplitIngredients decodes stored ingredients, dropping empty entries.
func SplitIngredients(stored string) []string {
	var out []string
	for part := range strings.SplitSeq(stored, ingredientSeparator) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// EditIngredients renders stored ingredients one per line for the edit form.
func EditIngredients(stored string) string {
	return strings.Join(strings.Split(stored, ingredientSeparator), "\n")
}
