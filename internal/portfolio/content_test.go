package portfolio

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	c := Default()

	assert.Equal(t, "Hannah Genneath Natheer", c.Profile.Name)
	assert.Len(t, c.Skills, 19)
	assert.Len(t, c.Badges, 3)
	assert.Len(t, c.Projects, 3)
	assert.Len(t, c.Experience, 2)
	assert.Len(t, c.Education, 3)
	require.NoError(t, Validate(c))
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Skills[0] = "COBOL"
	a.Projects[0].Tags[0] = "changed"
	a.Projects[0].Links.Code = "https://example.com"
	a.Projects[0].Metrics[0].Value = "0"
	a.Experience[0].Bullets = append(a.Experience[0].Bullets[:0], "rewritten")

	b := Default()
	assert.Equal(t, "Python", b.Skills[0])
	assert.Equal(t, "ML", b.Projects[0].Tags[0])
	assert.NotEqual(t, "https://example.com", b.Projects[0].Links.Code)
	assert.Equal(t, "0.8085", b.Projects[0].Metrics[0].Value)
	assert.Equal(t, "Administrative & data operations across assessments.", b.Experience[0].Bullets[0])
}

func TestLinksVisible(t *testing.T) {
	tests := []struct {
		name  string
		links *Links
		want  []string
	}{
		{"nil links", nil, nil},
		{"empty links", &Links{}, nil},
		{"placeholder demo hidden", &Links{Code: "c", Demo: DemoPlaceholder}, []string{"code"}},
		{"all present", &Links{Code: "c", Paper: "p", Demo: "d"}, []string{"code", "paper", "demo"}},
		{"paper only", &Links{Paper: "p"}, []string{"paper"}},
		{"real demo only", &Links{Demo: "https://demo.example"}, []string{"demo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, l := range tt.links.Visible() {
				got = append(got, l.Kind)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Visible() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Profile.Name = " "
	c.Projects[1].Year = ""
	c.Education = append(c.Education, Education{Title: "Orphan"})

	err := Validate(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidContent))
	assert.Contains(t, err.Error(), "profile: name is required")
	assert.Contains(t, err.Error(), "projects[1]")
	assert.Contains(t, err.Error(), "education[3]")
}

func TestSections(t *testing.T) {
	var ids, titles []string
	for _, s := range Sections() {
		ids = append(ids, s.ID)
		titles = append(titles, s.Title)
		assert.NotEmpty(t, s.Icon)
	}
	assert.Equal(t, []string{"about", "skills", "projects", "experience", "education", "contact"}, ids)
	assert.Equal(t, []string{"About", "Skills", "Projects", "Experience", "Education", "Contact"}, titles)
}
