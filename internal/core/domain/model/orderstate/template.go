package orderstate

import "regexp"

// TemplateNameMaxLength matches the width of the stored template column.
const TemplateNameMaxLength = 64

var templateNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// IsTemplateName reports whether s can name a mail template file ("payment", "order_canceled").
// The empty string means no e-mail for that language.
func IsTemplateName(s string) bool {
	return len(s) <= TemplateNameMaxLength && templateNamePattern.MatchString(s)
}
