package pipe

import (
	"encoding/json"
	"fmt"
	"os"
)

// fileVersion is the current plan file format version
const fileVersion = 1

// planFile is the JSON envelope for a serialized plan
type planFile struct {
	Version  int       `json:"version"`
	Name     string    `json:"name,omitempty"`
	Segments []Segment `json:"segments"`
}

// MarshalJSON serializes the plan with its format envelope, segments in
// stable id order.
func (p *Plan) MarshalJSON() ([]byte, error) {
	return json.Marshal(planFile{
		Version:  fileVersion,
		Name:     p.Name,
		Segments: p.Segments(),
	})
}

// UnmarshalJSON replaces the plan's contents with the serialized one.
//
// Segments are loaded as-is: duplicates are rejected, but orphaned or
// cyclic entries are allowed. The resolver is responsible for excluding
// those from the coordinate map, so one malformed entry never makes a
// saved plan unreadable.
func (p *Plan) UnmarshalJSON(data []byte) error {
	var file planFile
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}
	if file.Version > fileVersion {
		return fmt.Errorf("unsupported plan file version %d", file.Version)
	}

	segments := make(map[string]Segment, len(file.Segments))
	for _, s := range file.Segments {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, exists := segments[s.ID]; exists {
			return fmt.Errorf("duplicate segment id %s", s.ID)
		}
		segments[s.ID] = s
	}

	p.Name = file.Name
	p.segments = segments
	return nil
}

// Save writes the plan to a JSON file
func (p *Plan) Save(filename string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}

// Load reads a plan from a JSON file
func Load(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan file: %w", err)
	}

	plan := NewPlan("")
	if err := json.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}
	return plan, nil
}
