package content

// TutorialSection groups the steps of one hands-on tutorial stage.
type TutorialSection struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description,omitempty"`
	Steps       []TutorialStep `json:"steps"`
}

// TutorialStep is one step of a tutorial. It shares the section-type union
// and additionally allows the checkpoint variant, which renders as a
// highlighted summary with no further contract.
type TutorialStep struct {
	Section
}

// IsCheckpoint reports whether the step is a checkpoint summary.
func (s *TutorialStep) IsCheckpoint() bool {
	return s.Type == SectionCheckpoint
}
