package document

// Kind is the view kind of a screen.
type Kind int

const (
	// Code is backed by an existing file.
	Code Kind = iota
	// NewFile has no backing path yet.
	NewFile
	// Unsupported is a binary or unreadable file shown as a placeholder.
	Unsupported
	// Welcome is the singleton static view.
	Welcome
)

func (k Kind) String() string {
	switch k {
	case Code:
		return "code"
	case NewFile:
		return "new"
	case Unsupported:
		return "unsupported"
	case Welcome:
		return "welcome"
	default:
		return "unknown"
	}
}

// Editable reports whether the kind owns an editor widget.
func (k Kind) Editable() bool {
	return k == Code || k == NewFile
}
