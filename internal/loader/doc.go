// Package loader parses and validates the two zcalc input documents:
// the stackup definition and the net list.
//
// Both documents are human-authored YAML. Loading is a single
// synchronous pass: the file is read once to completion, decoded, and
// validated section by section. Validation fails fast — field presence
// is checked before types and enums, enums before cross-references —
// and never returns a partial model. Parse failures always propagate;
// nothing is printed and swallowed.
//
// Errors are typed (MaterialsError, LayersError, StackupError,
// NetListError) and carry the offending field and position so callers
// can report precisely. Each wraps a package sentinel for errors.Is.
//
// The two documents are validated independently. NetSpec.Layer and the
// reference-plane fields are soft references into the stackup; the
// opt-in CrossCheck resolves them for callers that want strict mode.
package loader
