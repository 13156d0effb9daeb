// Package classify maps file names to categories using a static
// extension table.
package classify

import (
	"strings"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// Classifier resolves file names against a table
type Classifier struct {
	table Table
	index map[string]models.Category
}

// New creates a classifier for the given table
func New(table Table) *Classifier {
	index := make(map[string]models.Category)
	for _, rule := range table {
		for _, ext := range rule.Extensions {
			// first rule wins on overlap
			if _, exists := index[ext]; !exists {
				index[ext] = rule.Category
			}
		}
	}
	return &Classifier{table: table, index: index}
}

// Default creates a classifier for the built-in table
func Default() *Classifier {
	return New(DefaultTable())
}

// Table returns the rules the classifier was built from
func (c *Classifier) Table() Table {
	return c.table
}

// Classify returns the category of name, or false when no rule matches
// the extension. Matching is case-sensitive.
func (c *Classifier) Classify(name string) (models.Category, bool) {
	ext := Extension(name)
	if ext == "" {
		return "", false
	}
	category, ok := c.index[ext]
	return category, ok
}

// Extension returns the text after the last dot of name.
// Names without a dot, dotfiles such as ".bashrc" and names ending in a
// dot have no extension.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i+1:]
}
