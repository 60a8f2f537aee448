package core

// ClipboardKind selects a system clipboard.
type ClipboardKind int

const (
	// ClipboardStandard is the regular copy and paste clipboard.
	ClipboardStandard ClipboardKind = iota

	// ClipboardPrimary is the X11 primary selection.
	ClipboardPrimary
)

// Clipboard gives widgets access to the system clipboard.
type Clipboard interface {
	Read(kind ClipboardKind) (string, bool)
	Write(kind ClipboardKind, contents string)
}

// NullClipboard ignores writes and never has contents.
type NullClipboard struct{}

func (NullClipboard) Read(ClipboardKind) (string, bool) { return "", false }
func (NullClipboard) Write(ClipboardKind, string)       {}

// MemoryClipboard keeps clipboard contents in memory.
type MemoryClipboard struct {
	contents map[ClipboardKind]string
}

// NewMemoryClipboard returns an empty in-memory clipboard.
func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{contents: make(map[ClipboardKind]string)}
}

func (c *MemoryClipboard) Read(kind ClipboardKind) (string, bool) {
	s, ok := c.contents[kind]
	return s, ok
}

func (c *MemoryClipboard) Write(kind ClipboardKind, contents string) {
	c.contents[kind] = contents
}
