package content

// NodeRole classifies a diagram node for styling and legend grouping.
type NodeRole string

const (
	RoleInput    NodeRole = "input"
	RoleProcess  NodeRole = "process"
	RoleOutput   NodeRole = "output"
	RoleDecision NodeRole = "decision"
	RoleTool     NodeRole = "tool"
	RoleAgent    NodeRole = "agent"
	RoleMemory   NodeRole = "memory"
)

var nodeRoles = map[NodeRole]bool{
	RoleInput:    true,
	RoleProcess:  true,
	RoleOutput:   true,
	RoleDecision: true,
	RoleTool:     true,
	RoleAgent:    true,
	RoleMemory:   true,
}

// Position is a layout coordinate; purely presentational.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData carries the renderable payload of a diagram node.
type NodeData struct {
	Label        string   `json:"label" validate:"required"`
	Role         NodeRole `json:"role"`
	DetailedHint string   `json:"detailedHint,omitempty"`
	ConceptIDs   []string `json:"conceptIds,omitempty"`

	// CodeExampleIndex points into the owning chapter's CodeExamples;
	// bounds-checked by the registry.
	CodeExampleIndex   *int            `json:"codeExampleIndex,omitempty"`
	CodeHighlightLines *HighlightRange `json:"codeHighlightLines,omitempty"`
}

// DiagramNode is a vertex in a chapter's illustrative flow diagram.
type DiagramNode struct {
	ID       string   `json:"id" validate:"required"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

// DiagramEdge connects two nodes within the same chapter's diagram.
// Source and Target must name existing node ids; the registry fails fast on
// a dangling reference since that is a content bug, not a runtime state.
type DiagramEdge struct {
	ID       string `json:"id" validate:"required"`
	Source   string `json:"source" validate:"required"`
	Target   string `json:"target" validate:"required"`
	Label    string `json:"label,omitempty"`
	Animated bool   `json:"animated,omitempty"`
}
