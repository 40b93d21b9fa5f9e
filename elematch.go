// Package elematch locates, inside a candidate HTML or XML document, the
// element that best corresponds to a single target element previously
// identified by id in a reference document of the same family. It learns
// exactly one target element and ranks every element of each candidate
// document by a combined text, attribute and tag similarity score.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, etree/, sqlite/).
package elematch
