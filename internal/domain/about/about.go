package about

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TechStack struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

type Strength struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Project struct {
	Title    string   `json:"title"`
	Tech     string   `json:"tech"`
	Color    string   `json:"color"`
	Features []string `json:"features"`
}

// Content is the part of a profile an actor is allowed to write.
type Content struct {
	Name              string      `json:"name"`
	Title             string      `json:"title"`
	School            string      `json:"school"`
	Location          string      `json:"location"`
	GithubURL         string      `json:"github_url"`
	GithubUsername    string      `json:"github_username"`
	NotionURL         string      `json:"notion_url"`
	Email             string      `json:"email"`
	TechStacks        []TechStack `json:"tech_stacks"`
	Strengths         []Strength  `json:"strengths"`
	Projects          []Project   `json:"projects"`
	Education         string      `json:"education"`
	EducationDetails  []string    `json:"education_details"`
	ExperienceDetails []string    `json:"experience_details"`
}

// Profile is one revision of the about page. At most one revision is active.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	IsActive  bool      `json:"is_active"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Content
}

// Persisted reports whether the store has assigned an id.
func (p *Profile) Persisted() bool {
	return p.ID != uuid.Nil
}

// Normalize replaces nil sequences with empty ones so they encode as [].
func (c *Content) Normalize() {
	if c.TechStacks == nil {
		c.TechStacks = []TechStack{}
	}
	for i := range c.TechStacks {
		if c.TechStacks[i].Skills == nil {
			c.TechStacks[i].Skills = []string{}
		}
	}
	if c.Strengths == nil {
		c.Strengths = []Strength{}
	}
	if c.Projects == nil {
		c.Projects = []Project{}
	}
	for i := range c.Projects {
		if c.Projects[i].Features == nil {
			c.Projects[i].Features = []string{}
		}
	}
	if c.EducationDetails == nil {
		c.EducationDetails = []string{}
	}
	if c.ExperienceDetails == nil {
		c.ExperienceDetails = []string{}
	}
}

// Patch holds a partial revision. Nil fields are left untouched.
type Patch struct {
	Name              *string
	Title             *string
	School            *string
	Location          *string
	GithubURL         *string
	GithubUsername    *string
	NotionURL         *string
	Email             *string
	TechStacks        *[]TechStack
	Strengths         *[]Strength
	Projects          *[]Project
	Education         *string
	EducationDetails  *[]string
	ExperienceDetails *[]string
}

func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Apply copies every supplied field onto c.
func (p Patch) Apply(c *Content) {
	setString(&c.Name, p.Name)
	setString(&c.Title, p.Title)
	setString(&c.School, p.School)
	setString(&c.Location, p.Location)
	setString(&c.GithubURL, p.GithubURL)
	setString(&c.GithubUsername, p.GithubUsername)
	setString(&c.NotionURL, p.NotionURL)
	setString(&c.Email, p.Email)
	setString(&c.Education, p.Education)
	if p.TechStacks != nil {
		c.TechStacks = *p.TechStacks
	}
	if p.Strengths != nil {
		c.Strengths = *p.Strengths
	}
	if p.Projects != nil {
		c.Projects = *p.Projects
	}
	if p.EducationDetails != nil {
		c.EducationDetails = *p.EducationDetails
	}
	if p.ExperienceDetails != nil {
		c.ExperienceDetails = *p.ExperienceDetails
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

type Repository interface {
	// FindActive returns ErrNoActiveProfile when no revision is active.
	FindActive(ctx context.Context) (*Profile, error)
	// CreateActive deactivates every active revision and inserts c as the new
	// active one owned by actorID.
	CreateActive(ctx context.Context, actorID string, c Content) (*Profile, error)
	// UpdateOwned applies patch to revision id only if actorID created it.
	UpdateOwned(ctx context.Context, id uuid.UUID, actorID string, patch Patch) (*Profile, error)
}
