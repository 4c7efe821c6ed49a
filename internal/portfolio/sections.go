package portfolio

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TopAnchor is the anchor at the very top of the page.
const TopAnchor = "top"

// Section is an anchorable region of the page.
type Section struct {
	ID    string
	Title string
	Icon  string
}

var sectionIcons = []struct{ id, icon string }{
	{"about", "map-pin"},
	{"skills", "flask-conical"},
	{"projects", "layout-grid"},
	{"experience", "briefcase"},
	{"education", "graduation-cap"},
	{"contact", "mail"},
}

// Sections returns the page sections in navigation order.
func Sections() []Section {
	title := cases.Title(language.English)
	out := make([]Section, 0, len(sectionIcons))
	for _, s := range sectionIcons {
		out = append(out, Section{ID: s.id, Title: title.String(s.id), Icon: s.icon})
	}
	return out
}

// Site is one render session over a Content value.
type Site struct {
	Content     Content
	skillGroups func() [][]string
}

func NewSite(c Content) *Site {
	s := &Site{Content: c}
	s.skillGroups = sync.OnceValue(func() [][]string {
		return Chunk(s.Content.Skills, SkillChunkSize)
	})
	return s
}

// SkillGroups is the skill list chunked for the grid, computed on first use.
func (s *Site) SkillGroups() [][]string {
	return s.skillGroups()
}
