package models

// Category is one of the fixed classification buckets.
// The value doubles as the name of the subdirectory files are moved into.
type Category string

const (
	// CategoryArchives holds compressed and packed files
	CategoryArchives Category = "Archives"
	// CategoryCode holds source code, scripts and markup
	CategoryCode Category = "Code"
	// CategoryDocuments holds office documents, PDFs and e-books
	CategoryDocuments Category = "Documents"
	// CategoryMusic holds audio files
	CategoryMusic Category = "Music"
	// CategoryPictures holds images
	CategoryPictures Category = "Pictures"
	// CategoryVideos holds video files
	CategoryVideos Category = "Videos"
)

// Categories returns every known category in alphabetical order
func Categories() []Category {
	return []Category{
		CategoryArchives,
		CategoryCode,
		CategoryDocuments,
		CategoryMusic,
		CategoryPictures,
		CategoryVideos,
	}
}

// Dir returns the subdirectory name for the category
func (c Category) Dir() string {
	return string(c)
}

// Valid reports whether c belongs to the closed category set
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
