// Package conftext reads and writes configuration trees in a sectioned text
// format:
//
//	; comment
//	theme = dark
//
//	[window]
//	width = 800
//	title = "  padded \"title\"  "
//
//	[window.position]
//	x = 10
//
// Leaves before the first section belong to the root. A section header names
// a node by its dotted path from the root. Unquoted values are taken verbatim
// after trimming; quoted values keep whitespace and understand the escapes
// \" \\ \n \r and \t.
//
// Decoding goes through conftree.Node.SetLeaf, so a blank value never creates
// a leaf and empty leaves do not survive a round trip.
package conftext
