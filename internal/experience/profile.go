// Package experience keeps the user's professional history: work roles,
// education, certifications and grouped skills.
package experience

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	ErrNotFound = errors.New("experience: not found")
	ErrEmpty    = errors.New("experience: empty value")
)

type Work struct {
	ID           int      `json:"id"`
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	ID           int      `json:"id"`
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type Certification struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// SkillGroup is a named list of skills. Items keep insertion order.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Snapshot is a copy of a profile's contents.
type Snapshot struct {
	Work           []Work          `json:"work"`
	Education      []Education     `json:"education"`
	Skills         []SkillGroup    `json:"skills"`
	Certifications []Certification `json:"certifications"`
}

// Profile is safe for concurrent use. New entries get the next free id
// and are listed first.
type Profile struct {
	mu   sync.RWMutex
	data Snapshot
}

func New(s Snapshot) *Profile {
	return &Profile{data: cloneSnapshot(s)}
}

func (p *Profile) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return cloneSnapshot(p.data)
}

func (p *Profile) AddWork(w Work) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	w.ID = nextID(p.data.Work, func(w Work) int { return w.ID })
	w.Achievements = nonNil(w.Achievements)
	p.data.Work = slices.Insert(p.data.Work, 0, w)
	return w.ID
}

// UpdateWork replaces the entry with w.ID.
func (p *Profile) UpdateWork(w Work) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	w.Achievements = nonNil(w.Achievements)
	if !replace(p.data.Work, w, func(w Work) int { return w.ID }) {
		return fmt.Errorf("update work %d: %w", w.ID, ErrNotFound)
	}
	return nil
}

func (p *Profile) DeleteWork(id int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var ok bool
	if p.data.Work, ok = remove(p.data.Work, id, func(w Work) int { return w.ID }); !ok {
		return fmt.Errorf("delete work %d: %w", id, ErrNotFound)
	}
	return nil
}

func (p *Profile) AddEducation(e Education) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	e.ID = nextID(p.data.Education, func(e Education) int { return e.ID })
	e.Achievements = nonNil(e.Achievements)
	p.data.Education = slices.Insert(p.data.Education, 0, e)
	return e.ID
}

func (p *Profile) UpdateEducation(e Education) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	e.Achievements = nonNil(e.Achievements)
	if !replace(p.data.Education, e, func(e Education) int { return e.ID }) {
		return fmt.Errorf("update education %d: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (p *Profile) DeleteEducation(id int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var ok bool
	if p.data.Education, ok = remove(p.data.Education, id, func(e Education) int { return e.ID }); !ok {
		return fmt.Errorf("delete education %d: %w", id, ErrNotFound)
	}
	return nil
}

func (p *Profile) AddCertification(c Certification) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	c.ID = nextID(p.data.Certifications, func(c Certification) int { return c.ID })
	p.data.Certifications = slices.Insert(p.data.Certifications, 0, c)
	return c.ID
}

func (p *Profile) UpdateCertification(c Certification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !replace(p.data.Certifications, c, func(c Certification) int { return c.ID }) {
		return fmt.Errorf("update certification %d: %w", c.ID, ErrNotFound)
	}
	return nil
}

func (p *Profile) DeleteCertification(id int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var ok bool
	if p.data.Certifications, ok = remove(p.data.Certifications, id, func(c Certification) int { return c.ID }); !ok {
		return fmt.Errorf("delete certification %d: %w", id, ErrNotFound)
	}
	return nil
}

// AddSkill adds skill under category, creating the group when needed.
// Adding a skill the group already holds is a no-op.
func (p *Profile) AddSkill(category, skill string) error {
	category, skill = strings.TrimSpace(category), strings.TrimSpace(skill)
	if category == "" || skill == "" {
		return fmt.Errorf("add skill: %w", ErrEmpty)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.groupIndex(category)
	if i < 0 {
		p.data.Skills = append(p.data.Skills, SkillGroup{Category: category, Items: []string{skill}})
		return nil
	}
	if !slices.Contains(p.data.Skills[i].Items, skill) {
		p.data.Skills[i].Items = append(p.data.Skills[i].Items, skill)
	}
	return nil
}

// DeleteSkill removes skill from category. A group left without skills
// is removed too.
func (p *Profile) DeleteSkill(category, skill string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.groupIndex(category)
	if i < 0 {
		return fmt.Errorf("delete skill %q: category %q: %w", skill, category, ErrNotFound)
	}
	g := &p.data.Skills[i]
	j := slices.Index(g.Items, skill)
	if j < 0 {
		return fmt.Errorf("delete skill %q: %w", skill, ErrNotFound)
	}
	g.Items = slices.Delete(g.Items, j, j+1)
	if len(g.Items) == 0 {
		p.data.Skills = slices.Delete(p.data.Skills, i, i+1)
	}
	return nil
}

func (p *Profile) groupIndex(category string) int {
	return slices.IndexFunc(p.data.Skills, func(g SkillGroup) bool { return g.Category == category })
}

func nextID[T any](items []T, id func(T) int) int {
	next := 1
	for _, it := range items {
		if id(it) >= next {
			next = id(it) + 1
		}
	}
	return next
}

func replace[T any](items []T, v T, id func(T) int) bool {
	for i := range items {
		if id(items[i]) == id(v) {
			items[i] = v
			return true
		}
	}
	return false
}

func remove[T any](items []T, target int, id func(T) int) ([]T, bool) {
	i := slices.IndexFunc(items, func(it T) bool { return id(it) == target })
	if i < 0 {
		return items, false
	}
	return slices.Delete(items, i, i+1), true
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func cloneSnapshot(s Snapshot) Snapshot {
	out := Snapshot{
		Work:           slices.Clone(s.Work),
		Education:      slices.Clone(s.Education),
		Certifications: slices.Clone(s.Certifications),
		Skills:         make([]SkillGroup, len(s.Skills)),
	}
	for i := range out.Work {
		out.Work[i].Achievements = slices.Clone(out.Work[i].Achievements)
	}
	for i := range out.Education {
		out.Education[i].Achievements = slices.Clone(out.Education[i].Achievements)
	}
	for i, g := range s.Skills {
		out.Skills[i] = SkillGroup{Category: g.Category, Items: slices.Clone(g.Items)}
	}
	return out
}
