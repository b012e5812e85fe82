// Package view holds the client-side view-state logic: the default filter
// composition, quick-filter presets and the smoothed trend line derived from
// the analytics output. No ambient singletons; callers own a Presets value.
package view

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pveldman/tasklane/filter"
)

// DefaultFilters is the filter state a fresh task list opens with: nothing
// filtered, newest first.
func DefaultFilters() filter.Spec {
	return filter.Spec{
		Search:    "",
		Category:  filter.All,
		Status:    filter.All,
		Priority:  filter.All,
		SortBy:    filter.SortCreatedAt,
		SortOrder: filter.OrderDesc,
	}
}

// Preset is a named, reusable filter specification.
type Preset struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Filters filter.Spec `json:"filters"`
}

// ErrPresetProtected is returned when deleting a built-in preset.
var ErrPresetProtected = errors.New("built-in presets cannot be deleted")

// BuiltinPresets are the stock quick filters. now anchors the "today" date
// ranges.
func BuiltinPresets(now time.Time) []Preset {
	today := filter.StartOfDay(now)

	dueToday := DefaultFilters()
	dueToday.Status = filter.StatusPending
	dueToday.DueFrom = &today
	dueToday.DueTo = &today
	dueToday.SortBy = filter.SortDueDate
	dueToday.SortOrder = filter.OrderAsc

	urgent := DefaultFilters()
	urgent.Status = filter.StatusPending
	urgent.Priority = "urgent"

	completedToday := DefaultFilters()
	completedToday.Status = filter.StatusCompleted
	completedToday.DueFrom = &today
	completedToday.DueTo = &today
	completedToday.SortBy = filter.SortUpdatedAt

	return []Preset{
		{ID: "today", Name: "Due Today", Filters: dueToday},
		{ID: "urgent", Name: "Urgent Tasks", Filters: urgent},
		{ID: "completed-today", Name: "Completed Today", Filters: completedToday},
	}
}

// Presets manages the built-in quick filters plus user-saved ones.
type Presets struct {
	builtin []Preset
	custom  []Preset
}

// NewPresets returns a preset set seeded with the built-ins anchored at now.
func NewPresets(now time.Time) *Presets {
	return &Presets{builtin: BuiltinPresets(now)}
}

// All returns built-ins followed by custom presets.
func (p *Presets) All() []Preset {
	out := make([]Preset, 0, len(p.builtin)+len(p.custom))
	out = append(out, p.builtin...)
	out = append(out, p.custom...)
	return out
}

// Save stores the current filters under a name. Blank names are rejected.
func (p *Presets) Save(name string, filters filter.Spec) (Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Preset{}, errors.New("preset name is required")
	}
	preset := Preset{ID: uuid.NewString(), Name: name, Filters: filters}
	p.custom = append(p.custom, preset)
	return preset, nil
}

// Delete removes a custom preset by id. Built-ins are protected.
func (p *Presets) Delete(id string) error {
	for _, b := range p.builtin {
		if b.ID == id {
			return ErrPresetProtected
		}
	}
	for i, c := range p.custom {
		if c.ID == id {
			p.custom = append(p.custom[:i], p.custom[i+1:]...)
			return nil
		}
	}
	return errors.New("preset not found")
}

// Describe summarizes a preset's active predicates for display.
func Describe(preset Preset) string {
	var parts []string
	if preset.Filters.Status != filter.All && preset.Filters.Status != "" {
		parts = append(parts, preset.Filters.Status)
	}
	if preset.Filters.Priority != filter.All && preset.Filters.Priority != "" {
		parts = append(parts, preset.Filters.Priority+" priority")
	}
	if preset.Filters.Category != filter.All && preset.Filters.Category != "" {
		parts = append(parts, preset.Filters.Category)
	}
	if len(parts) == 0 {
		return "All tasks"
	}
	return strings.Join(parts, ", ")
}
