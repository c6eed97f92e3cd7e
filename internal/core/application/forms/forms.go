// Package forms builds and handles the create and edit forms of order states and order
// return states. A form keeps the raw submitted values so it can be shown again with its
// field errors; only a valid form is turned into a command.
package forms

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"backoffice/internal/core/domain/model/kernel"
)

// Field error messages.
const (
	ErrValueTooLong = "This value is too long. It should have 64 characters or less."
	ErrColorInvalid = "This value is not a valid color."
	ErrValueInvalid = "This value is not valid."
)

// DefaultColor is the color proposed for a new status.
const DefaultColor = "#32CD32"

// Result tells the caller what Handle did with a form.
type Result struct {
	Submitted bool
	Valid     bool
	// ID is the created or edited entity, set only when a command ran.
	ID kernel.UUID
}

// Success reports whether a command ran and the caller should leave the form.
func (r Result) Success() bool {
	return r.Submitted && r.Valid
}

// Errors maps a field name, as posted, to its message.
type Errors map[string]string

// Languages is the language context shared by every form.
type Languages struct {
	All     []kernel.Language
	Default kernel.Language
}

// FieldName is the posted name of a translated field, e.g. name[fr].
func FieldName(field, isoCode string) string {
	return field + "[" + isoCode + "]"
}

func (l Languages) readLocalized(values url.Values, field string) map[string]string {
	localized := make(map[string]string, len(l.All))
	for _, lang := range l.All {
		localized[lang.IsoCode()] = strings.TrimSpace(values.Get(FieldName(field, lang.IsoCode())))
	}
	return localized
}

func (l Languages) validateDefaultName(names map[string]string, errors Errors) {
	iso := l.Default.IsoCode()
	if utf8.RuneCountInString(names[iso]) > kernel.GenericNameMaxLength {
		errors[FieldName("name", iso)] = ErrValueTooLong
	}
}

// missingFields lists the required fields left blank: the name in the default language
// and the color.
func (l Languages) missingFields(names map[string]string, color string) []string {
	var missing []string
	if names[l.Default.IsoCode()] == "" {
		missing = append(missing, "name")
	}
	if color == "" {
		missing = append(missing, "color")
	}
	return missing
}

func validateColor(color string, errors Errors) {
	if color != "" && !kernel.IsHexColor(color) {
		errors["color"] = ErrColorInvalid
	}
}
