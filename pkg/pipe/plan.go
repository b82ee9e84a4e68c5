package pipe

import (
	"fmt"
	"sort"
)

// Plan is the flat, arena-style collection of all segments in a drawing.
// Segments reference their parent by id only; there are no embedded child
// pointers. The tree shape is implied and re-derived on every resolve.
type Plan struct {
	Name     string
	segments map[string]Segment
}

// NewPlan creates an empty plan
func NewPlan(name string) *Plan {
	return &Plan{
		Name:     name,
		segments: make(map[string]Segment),
	}
}

// Add inserts a new segment after validating it. The parent id must be
// RootID or an existing segment id; this keeps interactively built plans
// well-formed, while Load still accepts arbitrary files.
func (p *Plan) Add(s Segment) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, exists := p.segments[s.ID]; exists {
		return fmt.Errorf("duplicate segment id %s", s.ID)
	}
	if s.ParentID != RootID {
		if _, ok := p.segments[s.ParentID]; !ok {
			return fmt.Errorf("parent %s of segment %s does not exist", s.ParentID, s.ID)
		}
	}
	p.segments[s.ID] = s
	return nil
}

// Update replaces an existing segment
func (p *Plan) Update(s Segment) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if _, exists := p.segments[s.ID]; !exists {
		return fmt.Errorf("no segment with id %s", s.ID)
	}
	p.segments[s.ID] = s
	return nil
}

// Remove deletes a segment by id. Descendants are left in place; they become
// orphans and simply stop resolving until re-parented or removed.
func (p *Plan) Remove(id string) error {
	if _, exists := p.segments[id]; !exists {
		return fmt.Errorf("no segment with id %s", id)
	}
	delete(p.segments, id)
	return nil
}

// Get returns the segment with the given id
func (p *Plan) Get(id string) (Segment, bool) {
	s, ok := p.segments[id]
	return s, ok
}

// Len returns the number of segments in the plan
func (p *Plan) Len() int {
	return len(p.segments)
}

// Segments returns all segments sorted by id, so callers iterate in a
// deterministic order.
func (p *Plan) Segments() []Segment {
	out := make([]Segment, 0, len(p.segments))
	for _, s := range p.segments {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Children returns the ids of all segments whose parent is the given id,
// sorted by id.
func (p *Plan) Children(parentID string) []string {
	var ids []string
	for id, s := range p.segments {
		if s.ParentID == parentID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
