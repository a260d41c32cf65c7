package store

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrTemplateIDInvalid is returned when a template id does not match the required pattern.
	ErrTemplateIDInvalid = errors.New("template id must match [a-z0-9][a-z0-9-]*[a-z0-9]")

	// ErrTemplatePromptEmpty is returned when a template has no prompt.
	ErrTemplatePromptEmpty = errors.New("template prompt must not be empty")

	templateIDRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9\-]*[a-z0-9])?$`)
)

// ValidateTemplate checks the id format and that a prompt is present. It does
// NOT check that placeholders match the declared form fields; unmatched
// placeholders are legal and pass through generation verbatim.
func ValidateTemplate(t *Template) error {
	if !templateIDRe.MatchString(t.ID) {
		return fmt.Errorf("%w: %q", ErrTemplateIDInvalid, t.ID)
	}
	if strings.TrimSpace(t.Prompt) == "" {
		return ErrTemplatePromptEmpty
	}
	return nil
}
