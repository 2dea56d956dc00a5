package domain

// Executable represents an executable file found in a search path
type Executable struct {
	Name string // base file name
	Path string // path used to invoke it
	Size int64  // size in bytes at scan time
}

// Index is the ordered collection of executables found by a scan
type Index struct {
	Executables []Executable
	TotalSize   uint64
	Paths       int // number of search paths scanned
}

// Len returns the number of executables in the index
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.Executables)
}

// At returns the executable at position i
func (idx *Index) At(i int) Executable {
	return idx.Executables[i]
}

// Mode is the display mode of the interactive prompt
type Mode int

const (
	ModeShort Mode = iota
	ModeLine
	ModeLong
)

// String returns the mode name as used in config files
func (m Mode) String() string {
	switch m {
	case ModeShort:
		return "short"
	case ModeLine:
		return "line"
	case ModeLong:
		return "long"
	default:
		return "unknown"
	}
}
