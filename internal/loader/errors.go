package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic checking via errors.Is().
var (
	// ErrInvalidMaterials indicates a malformed materials section.
	ErrInvalidMaterials = errors.New("invalid materials")

	// ErrInvalidLayers indicates a malformed layers section.
	ErrInvalidLayers = errors.New("invalid layers")

	// ErrInvalidStackup indicates a stackup document that could not be
	// loaded: missing file, parse failure, or a section-level error.
	ErrInvalidStackup = errors.New("invalid stackup")

	// ErrInvalidNetList indicates a net list document that could not be
	// loaded or a malformed net entry.
	ErrInvalidNetList = errors.New("invalid net list")
)

// MaterialsError reports a fault in the materials section.
// Material is empty for section-level faults; Field names the offending
// key when one is known.
type MaterialsError struct {
	Material string
	Field    string
	Reason   string
}

func (e *MaterialsError) Error() string {
	if e.Material == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidMaterials, e.Reason)
	}
	return fmt.Sprintf("%s: material '%s' %s", ErrInvalidMaterials, e.Material, e.Reason)
}

func (e *MaterialsError) Unwrap() error { return ErrInvalidMaterials }

// LayersError reports a fault in the layers section.
// Index is the zero-based position of the offending entry, or -1 for
// section-level faults.
type LayersError struct {
	Index  int
	Field  string
	Reason string
}

func (e *LayersError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidLayers, e.Reason)
	}
	return fmt.Sprintf("%s: layer at index %d %s", ErrInvalidLayers, e.Index, e.Reason)
}

func (e *LayersError) Unwrap() error { return ErrInvalidLayers }

// StackupError is the document-level error for stackup loading.
// Err holds the underlying cause (file read, YAML parse, or a
// MaterialsError/LayersError) when there is one; Reason carries
// document-level faults detected directly, such as duplicate layer
// names.
type StackupError struct {
	Reason string
	Err    error
}

func (e *StackupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", ErrInvalidStackup, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidStackup, e.Reason)
}

func (e *StackupError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidStackup, e.Err}
	}
	return []error{ErrInvalidStackup}
}

// NetListError is the document-level error for net list loading.
// Net is a best-effort identifier for the offending entry (the net
// name when determinable, its position otherwise); it is empty for
// document-level faults.
type NetListError struct {
	Net    string
	Field  string
	Reason string
	Err    error
}

func (e *NetListError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", ErrInvalidNetList, e.Err)
	}
	if e.Net == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidNetList, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrInvalidNetList, e.Net, e.Reason)
}

func (e *NetListError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidNetList, e.Err}
	}
	return []error{ErrInvalidNetList}
}
