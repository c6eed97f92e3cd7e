package kernel

import (
	"maps"
	"slices"
	"strings"
)

// LocalizedString maps language ISO codes to a translated value.
// Blank values are dropped, so a language is either translated or absent.
type LocalizedString struct {
	values map[string]string
}

// NewLocalizedString copies values, trimming whitespace and dropping blank entries.
func NewLocalizedString(values map[string]string) LocalizedString {
	cleaned := make(map[string]string, len(values))
	for iso, value := range values {
		iso = strings.ToLower(strings.TrimSpace(iso))
		value = strings.TrimSpace(value)
		if iso == "" || value == "" {
			continue
		}
		cleaned[iso] = value
	}
	return LocalizedString{values: cleaned}
}

// Get returns the value for isoCode, or "" when it is not translated.
func (l LocalizedString) Get(isoCode string) string {
	return l.values[isoCode]
}

// Values returns a copy of the translations.
func (l LocalizedString) Values() map[string]string {
	return maps.Clone(l.values)
}

// IsoCodes returns the translated languages in sorted order.
func (l LocalizedString) IsoCodes() []string {
	return slices.Sorted(maps.Keys(l.values))
}

func (l LocalizedString) IsEmpty() bool {
	return len(l.values) == 0
}

func (l LocalizedString) Equal(other LocalizedString) bool {
	return maps.Equal(l.values, other.values)
}
