package portfolio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidContent is returned when the authored content is missing a
// required field.
var ErrInvalidContent = errors.New("invalid content")

// Validate reports every missing required field in c.
func Validate(c Content) error {
	var problems []string
	missing := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(c.Profile.Name) == "" {
		missing("profile: name is required")
	}
	for i, p := range c.Projects {
		if p.Title == "" {
			missing("projects[%d]: title is required", i)
		}
		if p.Year == "" {
			missing("projects[%d] %q: year is required", i, p.Title)
		}
		if p.Description == "" {
			missing("projects[%d] %q: description is required", i, p.Title)
		}
		for j, m := range p.Metrics {
			if m.Label == "" || m.Value == "" {
				missing("projects[%d] %q: metric %d needs label and value", i, p.Title, j)
			}
		}
	}
	for i, e := range c.Experience {
		if e.Role == "" || e.Org == "" {
			missing("experience[%d]: role and org are required", i)
		}
	}
	for i, e := range c.Education {
		if e.Title == "" || e.Org == "" {
			missing("education[%d]: title and org are required", i)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(problems, "; "))
}
