package model

import (
	"strings"

	"github.com/google/uuid"
)

// AddExperience prepends a work history entry after checking required
// fields. The entry id is generated here.
func (p *Profile) AddExperience(e Experience) (*Experience, error) {
	var msgs []string
	if e.Title == "" {
		msgs = append(msgs, "Title is required")
	}
	if e.Company == "" {
		msgs = append(msgs, "Company is required")
	}
	if e.From.IsZero() {
		msgs = append(msgs, "From date is required")
	}
	if len(msgs) > 0 {
		return nil, NewValidationError(msgs...)
	}
	e.ID = uuid.New().String()
	p.Experience = append([]Experience{e}, p.Experience...)
	return &p.Experience[0], nil
}

// RemoveExperience deletes the entry with the given id. A missing id is
// ErrNotFound; nothing else is touched.
func (p *Profile) RemoveExperience(id string) error {
	for i := range p.Experience {
		if p.Experience[i].ID == id {
			p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// AddEducation prepends a schooling entry after checking required fields.
func (p *Profile) AddEducation(e Education) (*Education, error) {
	var msgs []string
	if e.School == "" {
		msgs = append(msgs, "School is required")
	}
	if e.Degree == "" {
		msgs = append(msgs, "Degree is required")
	}
	if e.FieldOfStudy == "" {
		msgs = append(msgs, "Field of study is required")
	}
	if e.From.IsZero() {
		msgs = append(msgs, "From date is required")
	}
	if len(msgs) > 0 {
		return nil, NewValidationError(msgs...)
	}
	e.ID = uuid.New().String()
	p.Education = append([]Education{e}, p.Education...)
	return &p.Education[0], nil
}

// RemoveEducation deletes the entry with the given id. A missing id is
// ErrNotFound; nothing else is touched.
func (p *Profile) RemoveEducation(id string) error {
	for i := range p.Education {
		if p.Education[i].ID == id {
			p.Education = append(p.Education[:i], p.Education[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// SplitSkills normalizes a comma-delimited skills string: split on comma,
// trim whitespace, drop zero-length results.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
