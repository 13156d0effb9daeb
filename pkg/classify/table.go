package classify

import (
	"fmt"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// Rule maps one category to the extensions that select it
type Rule struct {
	Category   models.Category
	Extensions []string
}

// Table is an ordered list of rules. When an extension appears in more
// than one rule the first rule wins.
type Table []Rule

// Categories returns the categories of the table in declaration order
func (t Table) Categories() []models.Category {
	out := make([]models.Category, 0, len(t))
	for _, rule := range t {
		out = append(out, rule.Category)
	}
	return out
}

// Validate reports the first rule whose category is not a known one or
// that appears twice. Category names become directory names, so an
// unknown one would create an unexpected folder.
func (t Table) Validate() error {
	seen := make(map[models.Category]bool, len(t))
	for i, rule := range t {
		if !rule.Category.Valid() {
			return fmt.Errorf("rule %d: unknown category %q", i, rule.Category)
		}
		if seen[rule.Category] {
			return fmt.Errorf("rule %d: category %s listed twice", i, rule.Category)
		}
		seen[rule.Category] = true
	}
	return nil
}

// DefaultTable returns the built-in extension table.
//
// The Archives rule carries the literal "dmg," (trailing comma), so a
// file named backup.dmg is not classified. The entry is kept as is until
// the intended behavior is confirmed; fixing it changes which files move.
func DefaultTable() Table {
	return Table{
		{
			Category:   models.CategoryArchives,
			Extensions: []string{"tar", "gz", "xz", "bz2", "zip", "7z", "rar", "dmg,"},
		},
		{
			Category:   models.CategoryMusic,
			Extensions: []string{"mp3", "mp4a", "wav"},
		},
		{
			Category:   models.CategoryPictures,
			Extensions: []string{"jpg", "jpeg", "gif", "bmp", "pmg", "svg", "heif"},
		},
		{
			Category:   models.CategoryVideos,
			Extensions: []string{"mp4", "mkv", "mov"},
		},
		{
			Category: models.CategoryDocuments,
			Extensions: []string{
				"pdf", "epub", "doc", "docx", "xls", "xlsx",
				"ppt", "pptx", "odt", "rtf", "md",
			},
		},
		{
			Category: models.CategoryCode,
			Extensions: []string{
				"py", "rs", "rb", "html", "htm", "js", "jar", "java", "c", "cpp",
				"toml", "json", "yaml", "tex", "cs", "nix", "pl", "h", "hpp", "css",
				"php", "swift", "go", "lua", "ts", "scss", "sass", "dart", "sql", "ini",
				"sh", "bash", "zsh", "ps1", "fish", "r", "yml", "bat", "cmd", "asm",
			},
		},
	}
}
