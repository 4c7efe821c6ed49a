// Package portfolio holds the static content of the portfolio page and the
// few pure helpers the templates need to lay it out.
package portfolio

// DemoPlaceholder marks a demo link that is not published yet.
const DemoPlaceholder = "#"

type Metric struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Links are optional outbound links of a project. An empty field is absent.
type Links struct {
	Code  string `yaml:"code,omitempty" json:"code,omitempty"`
	Paper string `yaml:"paper,omitempty" json:"paper,omitempty"`
	Demo  string `yaml:"demo,omitempty" json:"demo,omitempty"`
}

// ProjectLink is a single rendered project link.
type ProjectLink struct {
	Kind  string // code, paper or demo
	URL   string
	Icon  string
	Label string
}

// Visible returns the links that should be rendered, in code, paper, demo
// order. A demo equal to DemoPlaceholder is left out.
func (l *Links) Visible() []ProjectLink {
	if l == nil {
		return nil
	}
	var out []ProjectLink
	if l.Code != "" {
		out = append(out, ProjectLink{Kind: "code", URL: l.Code, Icon: "github", Label: "Source code"})
	}
	if l.Paper != "" {
		out = append(out, ProjectLink{Kind: "paper", URL: l.Paper, Icon: "book-open", Label: "Paper"})
	}
	if l.Demo != "" && l.Demo != DemoPlaceholder {
		out = append(out, ProjectLink{Kind: "demo", URL: l.Demo, Icon: "external-link", Label: "Live demo"})
	}
	return out
}

type Project struct {
	Title       string   `yaml:"title" json:"title"`
	Tags        []string `yaml:"tags" json:"tags"`
	Year        string   `yaml:"year" json:"year"`
	Description string   `yaml:"description" json:"description"`
	Links       *Links   `yaml:"links,omitempty" json:"links,omitempty"`
	Metrics     []Metric `yaml:"metrics,omitempty" json:"metrics,omitempty"`
	// Icon names an entry of the render icon set; it carries no domain meaning.
	Icon string `yaml:"icon" json:"icon"`
}

func (p Project) HasMetrics() bool { return len(p.Metrics) > 0 }

type Experience struct {
	Role    string   `yaml:"role" json:"role"`
	Org     string   `yaml:"org" json:"org"`
	Period  string   `yaml:"period" json:"period"`
	Bullets []string `yaml:"bullets" json:"bullets"`
}

type Education struct {
	Title  string `yaml:"title" json:"title"`
	Org    string `yaml:"org" json:"org"`
	Period string `yaml:"period" json:"period"`
}

// Profile is the person the page is about. Headline and About are Markdown.
type Profile struct {
	Name         string `yaml:"name" json:"name"`
	Initials     string `yaml:"initials" json:"initials"`
	Headline     string `yaml:"headline" json:"headline"`
	About        string `yaml:"about" json:"about"`
	CVPath       string `yaml:"cv_path" json:"cv_path"`
	Email        string `yaml:"email" json:"email"`
	GitHub       string `yaml:"github" json:"github"`
	LinkedIn     string `yaml:"linkedin" json:"linkedin"`
	ContactTitle string `yaml:"contact_title" json:"contact_title"`
	ContactBlurb string `yaml:"contact_blurb" json:"contact_blurb"`
}

// Content is everything rendered on the page.
type Content struct {
	Profile    Profile      `yaml:"profile" json:"profile"`
	Skills     []string     `yaml:"skills" json:"skills"`
	Badges     []string     `yaml:"badges" json:"badges"`
	Projects   []Project    `yaml:"projects" json:"projects"`
	Experience []Experience `yaml:"experience" json:"experience"`
	Education  []Education  `yaml:"education" json:"education"`
}
