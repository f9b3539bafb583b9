package format

import "golang.org/x/text/unicode/norm"

// NormalizeName applies Unicode NFC normalization to an entity or
// entity-type name before it is written as an on-disk attribute value.
// geoh5 strings are UTF-8 throughout (no compressed/codepage names as
// in the teacher format), but names arriving from different tools may
// use distinct but canonically-equivalent Unicode forms (e.g. composed
// vs. decomposed accents); normalizing on write keeps name-based
// lookups (Workspace.GetEntity by name) consistent regardless of source.
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}
