package operation

import (
	"fmt"
	"strings"

	"github.com/imstevez/blocks-mcp/internal/pkg/apperrors"
)

// SlotKind describes how an identifier slot is typed on the tool surface.
type SlotKind int

const (
	// SlotString is a string identifier (hash, address).
	SlotString SlotKind = iota
	// SlotNumber is an integer identifier (token instance id).
	SlotNumber
)

// Slot is one required identifier of an operation, substituted into the
// operation's path template.
type Slot struct {
	Name        string
	Description string
	Kind        SlotKind
}

// Filter is one named query parameter accepted by an operation. Empty values
// are omitted from the outgoing request.
type Filter struct {
	Name        string
	Description string
	Required    bool
}

// Operation is one callable explorer API action: a relative path template with
// identifier slots plus the query filters the endpoint accepts.
type Operation struct {
	Name        string
	Description string
	// Path is the explorer API path relative to "api/v2/". Slot values are
	// substituted for "{slot_name}" placeholders.
	Path    string
	Slots   []Slot
	Filters []Filter
}

// BuildPath substitutes the given slot values into the operation's path
// template. Every slot must be present and non-empty.
func (op Operation) BuildPath(slots map[string]string) (string, error) {
	path := op.Path
	for _, s := range op.Slots {
		v, ok := slots[s.Name]
		if !ok || v == "" {
			return "", fmt.Errorf("%w: missing value for %q", apperrors.ErrInvalidInput, s.Name)
		}
		path = strings.ReplaceAll(path, "{"+s.Name+"}", v)
	}
	return path, nil
}
