package output

// Mode selects one of the three mutually exclusive render strategies.
// It is fixed at Formatter construction and immutable afterwards, so the
// illegal "highlighted and machine at once" state cannot exist past New.
type Mode uint8

const (
	// ModePlain prints one human-readable record per matching line.
	ModePlain Mode = iota
	// ModeHighlighted is ModePlain with matched text wrapped in ANSI color escapes.
	ModeHighlighted
	// ModeMachine prints one parseable file:line:column:text record per match.
	ModeMachine
)

func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeHighlighted:
		return "highlighted"
	case ModeMachine:
		return "machine"
	default:
		return "unknown"
	}
}
