package http

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/yun0-0514/dev-blog/internal/domain/about"
	"github.com/yun0-0514/dev-blog/internal/domain/category"
	"github.com/yun0-0514/dev-blog/internal/domain/post"
)

// About DTOs

// AboutDTO omits the record fields for the built-in default, which has no id.
type AboutDTO struct {
	ID        *string    `json:"id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedBy string     `json:"created_by,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	about.Content
}

func ToAboutDTO(p *about.Profile) AboutDTO {
	dto := AboutDTO{
		IsActive:  p.IsActive,
		CreatedBy: p.CreatedBy,
		Content:   p.Content,
	}
	dto.Content.Normalize()
	if p.Persisted() {
		id := p.ID.String()
		createdAt, updatedAt := p.CreatedAt, p.UpdatedAt
		dto.ID = &id
		dto.CreatedAt = &createdAt
		dto.UpdatedAt = &updatedAt
	}
	return dto
}

type CreateAboutRequest struct {
	about.Content
}

// UpdateAboutRequest carries the target id plus any subset of content fields.
type UpdateAboutRequest struct {
	ID                string             `json:"id" binding:"required"`
	Name              *string            `json:"name"`
	Title             *string            `json:"title"`
	School            *string            `json:"school"`
	Location          *string            `json:"location"`
	GithubURL         *string            `json:"github_url"`
	GithubUsername    *string            `json:"github_username"`
	NotionURL         *string            `json:"notion_url"`
	Email             *string            `json:"email"`
	TechStacks        *[]about.TechStack `json:"tech_stacks"`
	Strengths         *[]about.Strength  `json:"strengths"`
	Projects          *[]about.Project   `json:"projects"`
	Education         *string            `json:"education"`
	EducationDetails  *[]string          `json:"education_details"`
	ExperienceDetails *[]string          `json:"experience_details"`
}

// UnmarshalJSON turns an explicit null into a clear: "" for text fields and
// an empty list for list fields. Absent keys stay nil and are left untouched.
func (req *UpdateAboutRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateAboutRequest
	if err := json.Unmarshal(data, (*plain)(req)); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	isNull := func(key string) bool {
		raw, ok := keys[key]
		return ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
	}

	texts := map[string]**string{
		"name":            &req.Name,
		"title":           &req.Title,
		"school":          &req.School,
		"location":        &req.Location,
		"github_url":      &req.GithubURL,
		"github_username": &req.GithubUsername,
		"notion_url":      &req.NotionURL,
		"email":           &req.Email,
		"education":       &req.Education,
	}
	for key, field := range texts {
		if isNull(key) {
			empty := ""
			*field = &empty
		}
	}

	if isNull("tech_stacks") {
		req.TechStacks = &[]about.TechStack{}
	}
	if isNull("strengths") {
		req.Strengths = &[]about.Strength{}
	}
	if isNull("projects") {
		req.Projects = &[]about.Project{}
	}
	if isNull("education_details") {
		req.EducationDetails = &[]string{}
	}
	if isNull("experience_details") {
		req.ExperienceDetails = &[]string{}
	}
	return nil
}

func (req *UpdateAboutRequest) ToPatch() about.Patch {
	return about.Patch{
		Name:              req.Name,
		Title:             req.Title,
		School:            req.School,
		Location:          req.Location,
		GithubURL:         req.GithubURL,
		GithubUsername:    req.GithubUsername,
		NotionURL:         req.NotionURL,
		Email:             req.Email,
		TechStacks:        req.TechStacks,
		Strengths:         req.Strengths,
		Projects:          req.Projects,
		Education:         req.Education,
		EducationDetails:  req.EducationDetails,
		ExperienceDetails: req.ExperienceDetails,
	}
}

// Category DTOs
type CategoryDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Color       string  `json:"color"`
	Description *string `json:"description,omitempty"`
}

func ToCategoryDTO(c *category.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Color:       c.Color,
		Description: c.Description,
	}
}

func ToCategoryListDTO(cats []*category.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, len(cats))
	for i, c := range cats {
		dtos[i] = ToCategoryDTO(c)
	}
	return dtos
}

// Post DTOs
type PostSummaryDTO struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Slug          string       `json:"slug"`
	Excerpt       string       `json:"excerpt"`
	CoverImageURL *string      `json:"cover_image_url,omitempty"`
	ViewCount     int          `json:"view_count"`
	Category      *CategoryDTO `json:"category,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

func ToPostSummaryDTO(p *post.Post) PostSummaryDTO {
	dto := PostSummaryDTO{
		ID:            p.ID.String(),
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Summary(160),
		CoverImageURL: p.CoverImageURL,
		ViewCount:     p.ViewCount,
		CreatedAt:     p.CreatedAt,
	}
	if p.Category != nil {
		c := ToCategoryDTO(p.Category)
		dto.Category = &c
	}
	return dto
}

func ToPostSummaryListDTO(posts []*post.Post) []PostSummaryDTO {
	dtos := make([]PostSummaryDTO, len(posts))
	for i, p := range posts {
		dtos[i] = ToPostSummaryDTO(p)
	}
	return dtos
}
