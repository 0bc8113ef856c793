// Package locations keeps the places a user tracks for their career:
// saved places they live in or are weighing, places they have lived, and a
// fixed list of suggested places to explore.
package locations

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	ErrNotFound = errors.New("locations: not found")
	ErrEmpty    = errors.New("locations: name is required")
	ErrRating   = errors.New("locations: rating must be between 1 and 5")
	ErrType     = errors.New("locations: unknown type")
)

// Types offered for a saved place.
var Types = []string{"Home", "Work Interest", "Future Home", "Interest", "Vacation"}

const (
	DefaultType   = "Interest"
	DefaultRating = 4.0
	DefaultImage  = "📍"
)

// Detail is one labelled fact about a place, like its cost of living.
type Detail struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Saved struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Rating  float64  `json:"rating"`
	Details []Detail `json:"details"`
	Notes   string   `json:"notes"`
	Image   string   `json:"image"`
}

type History struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Period     string   `json:"period"`
	Role       string   `json:"role"`
	Highlights []string `json:"highlights"`
	Image      string   `json:"image"`
}

// Explore is a suggested place. Suggestions are read-only and can be
// copied into the saved list.
type Explore struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Match   string   `json:"match"`
	Details []Detail `json:"details"`
	Reasons []string `json:"reasons"`
	Image   string   `json:"image"`
}

type Snapshot struct {
	Saved   []Saved   `json:"saved"`
	History []History `json:"history"`
	Explore []Explore `json:"explore"`
}

// Atlas is safe for concurrent use. New places get the next free id and are
// listed last.
type Atlas struct {
	mu   sync.RWMutex
	data Snapshot
}

func New(s Snapshot) *Atlas {
	return &Atlas{data: cloneSnapshot(s)}
}

func (a *Atlas) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return cloneSnapshot(a.data)
}

func checkSaved(s *Saved) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return ErrEmpty
	}
	if s.Rating == 0 {
		s.Rating = DefaultRating
	}
	if s.Rating < 1 || s.Rating > 5 {
		return ErrRating
	}
	if s.Type == "" {
		s.Type = DefaultType
	}
	if !slices.Contains(Types, s.Type) {
		return ErrType
	}
	if s.Image == "" {
		s.Image = DefaultImage
	}
	if s.Details == nil {
		s.Details = []Detail{}
	}
	return nil
}

func (a *Atlas) AddSaved(s Saved) (int, error) {
	if err := checkSaved(&s); err != nil {
		return 0, fmt.Errorf("add saved location: %w", err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	s.ID = nextID(a.data.Saved, func(s Saved) int { return s.ID })
	a.data.Saved = append(a.data.Saved, s)
	return s.ID, nil
}

// UpdateSaved replaces the place with s.ID.
func (a *Atlas) UpdateSaved(s Saved) error {
	if err := checkSaved(&s); err != nil {
		return fmt.Errorf("update saved location %d: %w", s.ID, err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if !replace(a.data.Saved, s, func(s Saved) int { return s.ID }) {
		return fmt.Errorf("update saved location %d: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (a *Atlas) DeleteSaved(id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	var ok bool
	if a.data.Saved, ok = remove(a.data.Saved, id, func(s Saved) int { return s.ID }); !ok {
		return fmt.Errorf("delete saved location %d: %w", id, ErrNotFound)
	}
	return nil
}

// checkHistory drops blank highlights.
func checkHistory(h *History) error {
	h.Name = strings.TrimSpace(h.Name)
	if h.Name == "" {
		return ErrEmpty
	}
	if h.Image == "" {
		h.Image = DefaultImage
	}
	kept := []string{}
	for _, s := range h.Highlights {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}
	h.Highlights = kept
	return nil
}

func (a *Atlas) AddHistory(h History) (int, error) {
	if err := checkHistory(&h); err != nil {
		return 0, fmt.Errorf("add history location: %w", err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	h.ID = nextID(a.data.History, func(h History) int { return h.ID })
	a.data.History = append(a.data.History, h)
	return h.ID, nil
}

func (a *Atlas) UpdateHistory(h History) error {
	if err := checkHistory(&h); err != nil {
		return fmt.Errorf("update history location %d: %w", h.ID, err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if !replace(a.data.History, h, func(h History) int { return h.ID }) {
		return fmt.Errorf("update history location %d: %w", h.ID, ErrNotFound)
	}
	return nil
}

func (a *Atlas) DeleteHistory(id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	var ok bool
	if a.data.History, ok = remove(a.data.History, id, func(h History) int { return h.ID }); !ok {
		return fmt.Errorf("delete history location %d: %w", id, ErrNotFound)
	}
	return nil
}

// SaveExplore copies a suggestion into the saved list as an Interest with
// the default rating. Its reasons become the notes.
func (a *Atlas) SaveExplore(id int) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	i := slices.IndexFunc(a.data.Explore, func(e Explore) bool { return e.ID == id })
	if i < 0 {
		return 0, fmt.Errorf("save explore location %d: %w", id, ErrNotFound)
	}
	e := a.data.Explore[i]
	s := Saved{
		ID:      nextID(a.data.Saved, func(s Saved) int { return s.ID }),
		Name:    e.Name,
		Type:    DefaultType,
		Rating:  DefaultRating,
		Details: append(slices.Clone(e.Details), Detail{Key: "Quality of life", Value: "4.0"}),
		Notes:   strings.Join(e.Reasons, ". "),
		Image:   e.Image,
	}
	a.data.Saved = append(a.data.Saved, s)
	return s.ID, nil
}

// Search returns the saved places whose name or type contains query, and
// the suggestions whose name does. Matching ignores case; an empty query
// matches everything.
func (s Snapshot) Search(query string) ([]Saved, []Explore) {
	q := strings.ToLower(strings.TrimSpace(query))
	has := func(v string) bool { return strings.Contains(strings.ToLower(v), q) }

	saved := []Saved{}
	for _, l := range s.Saved {
		if has(l.Name) || has(l.Type) {
			saved = append(saved, l)
		}
	}
	explore := []Explore{}
	for _, l := range s.Explore {
		if has(l.Name) {
			explore = append(explore, l)
		}
	}
	return saved, explore
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
	i := slices.IndexFunc(items, func(it T) bool { return id(it) == id(v) })
	if i < 0 {
		return false
	}
	items[i] = v
	return true
}

func remove[T any](items []T, target int, id func(T) int) ([]T, bool) {
	i := slices.IndexFunc(items, func(it T) bool { return id(it) == target })
	if i < 0 {
		return items, false
	}
	return slices.Delete(items, i, i+1), true
}

func cloneSnapshot(s Snapshot) Snapshot {
	out := Snapshot{
		Saved:   slices.Clone(s.Saved),
		History: slices.Clone(s.History),
		Explore: slices.Clone(s.Explore),
	}
	for i := range out.Saved {
		out.Saved[i].Details = slices.Clone(out.Saved[i].Details)
	}
	for i := range out.History {
		out.History[i].Highlights = slices.Clone(out.History[i].Highlights)
	}
	for i := range out.Explore {
		out.Explore[i].Details = slices.Clone(out.Explore[i].Details)
		out.Explore[i].Reasons = slices.Clone(out.Explore[i].Reasons)
	}
	return out
}
