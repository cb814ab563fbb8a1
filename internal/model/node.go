// Package model defines the annotated file tree shared by the scanner,
// the selection logic, and the session engine.
//
// A scan of a project root produces a slice of root-level FileNodes. Every
// node carries a tri-state selection flag that the selection package stamps
// from a profile's path sets and that the session engine toggles in response
// to user actions.
package model

// SelectionState is the tri-state selection flag carried by every node.
type SelectionState int

const (
	// StateNew marks a node with no recorded choice in the active profile.
	// It is the zero value, so freshly scanned nodes start as New.
	StateNew SelectionState = iota

	// StateSelected marks a node whose content is included in the archive.
	StateSelected

	// StateDeselected marks a node the user explicitly excluded.
	StateDeselected
)

// String returns the lowercase display name of the state.
func (s SelectionState) String() string {
	switch s {
	case StateSelected:
		return "selected"
	case StateDeselected:
		return "deselected"
	case StateNew:
		return "new"
	default:
		return "unknown"
	}
}

// MarshalText renders the state by name in JSON output.
func (s SelectionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// FileNode is one node of the scanned tree.
type FileNode struct {
	// Path is the absolute path of the node, unique within one scan.
	Path string `json:"path"`

	// Name is the last path component, used for display.
	Name string `json:"name"`

	// IsDir reports whether the node is a directory.
	IsDir bool `json:"is_dir"`

	// State is the node's current tri-state selection flag.
	State SelectionState `json:"state"`

	// Checksum is the hex content hash for files, empty for directories.
	// It is recomputed on every scan.
	Checksum string `json:"checksum,omitempty"`

	// Children holds the node's entries, directories first then
	// alphabetical. Non-empty only for directories.
	Children []*FileNode `json:"children,omitempty"`
}
