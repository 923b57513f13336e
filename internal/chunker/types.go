package chunker

// word window parameters
type Options struct {
	Size    int // words per chunk
	Overlap int // words shared by consecutive chunks
}

// a text file picked up by CollectDocuments
type Document struct {
	Path    string
	Name    string // path relative to the walked root
	Content string
}
