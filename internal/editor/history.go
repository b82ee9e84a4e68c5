package editor

import (
	"encoding/json"

	"github.com/philipparndt/isopipe/pkg/pipe"
)

// history manages undo/redo as a bounded list of JSON plan snapshots.
// Snapshots are cheap at editing scale and immune to aliasing bugs that
// come with sharing live plan state across states.
type history struct {
	states  [][]byte
	current int
	max     int
}

func newHistory(max int) *history {
	if max <= 0 {
		max = 50
	}
	return &history{
		states:  make([][]byte, 0, max),
		current: -1,
		max:     max,
	}
}

// save records the plan as the newest state, truncating any redo tail
func (h *history) save(plan *pipe.Plan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}

	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}

	h.states = append(h.states, data)

	if len(h.states) > h.max {
		h.states = h.states[1:]
	} else {
		h.current++
	}

	return nil
}

func (h *history) canUndo() bool {
	return h.current > 0
}

func (h *history) canRedo() bool {
	return h.current < len(h.states)-1
}

// undo steps back one state. The second return is false when there is
// nothing to undo.
func (h *history) undo() (*pipe.Plan, bool, error) {
	if !h.canUndo() {
		return nil, false, nil
	}
	h.current--
	plan, err := h.restore(h.states[h.current])
	return plan, err == nil, err
}

// redo steps forward one state. The second return is false when there is
// nothing to redo.
func (h *history) redo() (*pipe.Plan, bool, error) {
	if !h.canRedo() {
		return nil, false, nil
	}
	h.current++
	plan, err := h.restore(h.states[h.current])
	return plan, err == nil, err
}

func (h *history) restore(data []byte) (*pipe.Plan, error) {
	plan := pipe.NewPlan("")
	if err := json.Unmarshal(data, plan); err != nil {
		return nil, err
	}
	return plan, nil
}
