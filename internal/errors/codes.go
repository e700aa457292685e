package errors

// Error codes for grammar compilation.
// These codes are used in diagnostics and documentation to provide
// consistent error identification across the toolchain.
//
// Grammar defects are always fatal: they indicate a broken grammar file,
// not a recoverable runtime condition, and they block code generation.
const (
	// G0001: a rule references a name that is neither a definition nor a
	// primitive terminal category
	ErrorUnresolvedReference = "G0001"

	// G0002: a field is reachable with conflicting cardinalities and no
	// repetition dominates
	ErrorAmbiguousCardinality = "G0002"

	// G0003: the grammar text itself is malformed
	ErrorMalformedGrammar = "G0003"

	// G0004: '?' or '*' applied directly to an already optional or
	// repeated rule
	ErrorNestedCardinality = "G0004"

	// G0005: a quoted literal with no token kind in the terminal vocabulary
	ErrorUnknownLiteral = "G0005"

	// G0006: the same name defined twice
	ErrorDuplicateDefinition = "G0006"

	// G0007: one field label bound to two different targets
	ErrorConflictingTargets = "G0007"
)
