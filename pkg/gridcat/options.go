// Package gridcat extracts the first worksheet of an xlsx container as a
// row matrix or as header-keyed records.
package gridcat

// Mode selects the output shape.
type Mode string

const (
	// ModeObjects projects data rows into header-keyed records.
	ModeObjects Mode = "objects"
	// ModeArrays emits the raw row matrix, header row included.
	ModeArrays Mode = "arrays"
)

// Options configures extraction output.
type Options struct {
	// Mode selects record or matrix output.
	Mode Mode
}

// DefaultOptions returns the default record-output options.
func DefaultOptions() Options {
	return Options{Mode: ModeObjects}
}

// ParseMode maps a mode argument to a Mode. Anything other than "arrays"
// means object output; unrecognized values are not an error.
func ParseMode(s string) Mode {
	if s == string(ModeArrays) {
		return ModeArrays
	}
	return ModeObjects
}
