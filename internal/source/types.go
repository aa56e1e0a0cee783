package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, CLI argument).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	// FileDecoded indicates the content was transcoded from a legacy encoding.
	FileDecoded
)

// Encoding selects how raw file bytes are decoded on load.
// Legacy Fortran sources are frequently Latin-1.
type Encoding uint8

const (
	EncodingUTF8 Encoding = iota
	EncodingLatin1
)

// ParseEncoding maps a config or CLI spelling onto an Encoding.
func ParseEncoding(s string) (Encoding, bool) {
	switch s {
	case "", "utf-8", "utf8":
		return EncodingUTF8, true
	case "latin-1", "latin1", "iso-8859-1":
		return EncodingLatin1, true
	}
	return EncodingUTF8, false
}

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
