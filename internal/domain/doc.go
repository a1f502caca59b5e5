// Package domain defines the core domain types for zcalc.
//
// A Stackup is the ordered set of physical layers (copper and
// dielectric) forming a PCB cross-section, together with the materials
// those layers reference and the fabrication limits the board was
// specified for. A NetSpec is the electrical and layout requirement
// for one net: target impedance, current, geometry, and reference
// planes.
//
// Enumerations (MaterialKind, LayerType, NetRole, Geometry) are
// string-backed for YAML friendliness but closed: each has a Parse
// constructor that rejects unrecognized tags, and the string form
// never drives internal logic beyond serialization.
//
// All types are plain values built once by the loader package and
// read-only afterwards. The package has no I/O and no external
// dependencies.
package domain
