package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"backoffice/internal/pkg/errs"
)

var isoCodePattern = regexp.MustCompile(`^[a-z]{2,3}(-[a-z]{2})?$`)

// Language is a back-office language, identified by its lower-case ISO code.
type Language struct {
	isoCode string
	name    string
}

// NewLanguage validates the ISO code and falls back to the code when name is empty.
func NewLanguage(isoCode, name string) (Language, error) {
	isoCode = strings.ToLower(strings.TrimSpace(isoCode))
	if isoCode == "" {
		return Language{}, errs.NewValueIsRequiredError("language iso code")
	}
	if !isoCodePattern.MatchString(isoCode) {
		return Language{}, errs.NewValueIsInvalidErrorWithCause(
			"language iso code",
			fmt.Errorf("%q is not an ISO 639 code", isoCode),
		)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = isoCode
	}
	return Language{isoCode: isoCode, name: name}, nil
}

// ParseLanguages reads a comma separated "iso:Name" list, e.g. "en:English,fr:Français".
// Duplicated codes are rejected.
func ParseLanguages(raw string) ([]Language, error) {
	parts := strings.Split(raw, ",")
	languages := make([]Language, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		code, name, _ := strings.Cut(part, ":")
		lang, err := NewLanguage(code, name)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[lang.isoCode]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"languages",
				fmt.Errorf("%s is listed twice", lang.isoCode),
			)
		}
		seen[lang.isoCode] = struct{}{}
		languages = append(languages, lang)
	}

	if len(languages) == 0 {
		return nil, errs.NewValueIsRequiredError("languages")
	}
	return languages, nil
}

func (l Language) IsoCode() string {
	return l.isoCode
}

func (l Language) Name() string {
	return l.name
}

// Label is the "<iso> - <name>" text used by language selectors.
func (l Language) Label() string {
	return fmt.Sprintf("%s - %s", l.isoCode, l.name)
}

func (l Language) IsZero() bool {
	return l.isoCode == ""
}
