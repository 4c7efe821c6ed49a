package render

import (
	"fmt"
	"html/template"

	"github.com/hannahgnatheer/portfolio/internal/portfolio"
)

// Page is the view model of the portfolio page. Everything the templates
// read is computed here, so executing the templates never fails on data.
type Page struct {
	Title       string
	Description string
	SiteURL     string
	Year        int

	Profile     portfolio.Profile
	Headline    template.HTML
	About       template.HTML
	Badges      []string
	Sections    []portfolio.Section
	SkillGroups [][]string
	Projects    []ProjectCard
	Experience  []portfolio.Experience
	Education   []portfolio.Education
}

// ProjectCard is a project ready for the card template.
type ProjectCard struct {
	Title       string
	Year        string
	Icon        string
	Description template.HTML
	Tags        []string
	Links       []portfolio.ProjectLink
	Metrics     []portfolio.Metric
}

// SectionView pairs a section with the page it belongs to.
type SectionView struct {
	Section portfolio.Section
	Page    Page
}

var defaultMarkdown = NewMarkdown()

// NewPage builds the view model for content. The copyright year is passed
// in so the same inputs always produce the same page.
func NewPage(content portfolio.Content, year int) (Page, error) {
	site := portfolio.NewSite(content)
	md := defaultMarkdown

	headline, err := md.Inline(content.Profile.Headline)
	if err != nil {
		return Page{}, fmt.Errorf("headline: %w", err)
	}
	about, err := md.Inline(content.Profile.About)
	if err != nil {
		return Page{}, fmt.Errorf("about: %w", err)
	}
	description, err := md.Plain(content.Profile.Headline)
	if err != nil {
		return Page{}, fmt.Errorf("description: %w", err)
	}

	cards := make([]ProjectCard, 0, len(content.Projects))
	for _, p := range content.Projects {
		desc, err := md.Inline(p.Description)
		if err != nil {
			return Page{}, fmt.Errorf("project %q: %w", p.Title, err)
		}
		card := ProjectCard{
			Title:       p.Title,
			Year:        p.Year,
			Icon:        p.Icon,
			Description: desc,
			Tags:        p.Tags,
			Links:       p.Links.Visible(),
		}
		if p.HasMetrics() {
			card.Metrics = p.Metrics
		}
		cards = append(cards, card)
	}

	return Page{
		Title:       content.Profile.Name + " | Portfolio",
		Description: description,
		Year:        year,
		Profile:     content.Profile,
		Headline:    headline,
		About:       about,
		Badges:      content.Badges,
		Sections:    portfolio.Sections(),
		SkillGroups: site.SkillGroups(),
		Projects:    cards,
		Experience:  content.Experience,
		Education:   content.Education,
	}, nil
}
