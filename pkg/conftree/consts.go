package conftree

const (
	// PathSeparator separates segments in the dotted paths understood by
	// Config, e.g. "window.position.x".
	PathSeparator = "."

	// DefaultPathCapacity is the initial capacity of path buffers used while
	// walking. Configuration trees are shallow.
	DefaultPathCapacity = 8

	// ============================================================================
	// Limits
	// ============================================================================

	// DefaultMaxChildren is the default maximum number of children per node.
	DefaultMaxChildren = 4096

	// DefaultMaxLeaves is the default maximum number of leaves per node.
	DefaultMaxLeaves = 4096

	// DefaultMaxNameLen is the default maximum length of a node or leaf name
	// in bytes.
	DefaultMaxNameLen = 255

	// DefaultMaxValueLen is the default maximum length of a leaf value in
	// bytes (64 KB).
	DefaultMaxValueLen = 64 << 10

	// DefaultMaxDepth is the default maximum tree depth.
	DefaultMaxDepth = 64

	// RelaxedMaxValueLen allows leaf values up to 1 MB.
	RelaxedMaxValueLen = 1 << 20

	// RelaxedMaxDepth allows very deep trees.
	RelaxedMaxDepth = 512

	// StrictMaxNameLen is a conservative name limit.
	StrictMaxNameLen = 64

	// StrictMaxValueLen is a conservative value limit (4 KB).
	StrictMaxValueLen = 4 << 10

	// StrictMaxDepth is a conservative depth limit.
	StrictMaxDepth = 16

	// StrictCountDivisor divides the default child and leaf counts for
	// StrictLimits.
	StrictCountDivisor = 16
)
