package conftext

const (
	// ============================================================================
	// Structural Tokens
	// ============================================================================

	// SectionOpen marks the start of a section header
	SectionOpen = "["

	// SectionClose marks the end of a section header
	SectionClose = "]"

	// SectionSeparator separates node names inside a section header
	SectionSeparator = "."

	// Assignment separates a leaf name from its value
	Assignment = "="

	// CommentPrefix marks a comment line
	CommentPrefix = ";"

	// HashCommentPrefix is accepted as an alternative comment marker
	HashCommentPrefix = "#"

	// ============================================================================
	// Quoting
	// ============================================================================

	// Quote delimits values that need to keep whitespace or line breaks
	Quote = "\""

	// Escape starts an escape sequence inside a quoted value
	Escape = '\\'

	// ============================================================================
	// Line Endings
	// ============================================================================

	// LF is the default line ending
	LF = "\n"

	// CRLF is the Windows line ending
	CRLF = "\r\n"

	// CR is stripped from the end of input lines
	CR = "\r"

	// ============================================================================
	// Encodings
	// ============================================================================

	// EncodingUTF8 is the default encoding
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is little-endian UTF-16
	EncodingUTF16LE = "UTF-16LE"

	// EncodingWindows1252 is the Western European Windows code page
	EncodingWindows1252 = "WINDOWS-1252"

	// ============================================================================
	// Scanner Sizing
	// ============================================================================

	// ScannerInitialBufferSize is the initial line buffer
	ScannerInitialBufferSize = 64 * 1024

	// ScannerMaxLineSize bounds a single input line (1 MB)
	ScannerMaxLineSize = 1024 * 1024
)

var (
	// UTF8BOM is the UTF-8 byte order mark
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

	// UTF16LEBOM is the UTF-16 little-endian byte order mark
	UTF16LEBOM = []byte{0xFF, 0xFE}
)
