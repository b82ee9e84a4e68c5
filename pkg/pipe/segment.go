package pipe

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RootID is the reserved parent identifier for segments that start at the
// drawing origin. Root is not a real segment; it is the universal ancestor
// of every top-level segment.
const RootID = "ROOT"

// Segment is one directed edge in the piping tree. A segment knows only its
// parent and a direction plus length; absolute coordinates are derived by
// the resolver.
type Segment struct {
	ID        string    `json:"id" validate:"required,nefield=ParentID"`
	ParentID  string    `json:"parentId" validate:"required"`
	Length    float64   `json:"length" validate:"gte=0"`
	Direction Direction `json:"direction" validate:"required,oneof=NORTH SOUTH EAST WEST UP DOWN"`

	// Attributes below affect rendering and reporting only; the resolver
	// treats them as opaque.
	Size             string `json:"size" validate:"required"`
	InstallationType string `json:"installationType"`
	Fitting          string `json:"fitting"`
	Label            string `json:"label,omitempty"`
}

var validate = validator.New()

// Validate checks the segment's own fields. Tree-level rules (id uniqueness,
// resolvable ancestry) are checked by Plan and the resolver respectively.
func (s Segment) Validate() error {
	if s.ID == RootID {
		return fmt.Errorf("segment id %q is reserved for the root", RootID)
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid segment %s: %w", s.ID, err)
	}
	return nil
}

// NewSegmentID generates a fresh unique segment identifier
func NewSegmentID() string {
	return uuid.NewString()
}
