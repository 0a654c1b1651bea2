// Package catalog exposes the read-only list of variables a naming
// pattern may reference. It only drives UI affordances and the CLI's vars
// listing; the generator itself resolves variables through its bindings
// map and the reserved date-token table.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/tidydrive/namerule/pkg/namegen"
)

const (
	CategoryDate    = "date"
	CategoryProject = "project"
	CategoryFile    = "file"
	CategoryCustom  = "custom"
)

// Variable describes one catalog entry.
type Variable struct {
	Name        string `yaml:"name" json:"variable_name"`
	Description string `yaml:"description" json:"description"`
	Example     string `yaml:"example" json:"example_value"`
	Category    string `yaml:"category" json:"category"`
}

// DisplayName renders the variable name for UI labels, e.g.
// "project_name" becomes "Project Name". Date tokens keep their spelling.
func (v Variable) DisplayName() string {
	if v.Category == CategoryDate {
		return v.Name
	}
	caser := cases.Title(language.English)
	words := strings.Split(v.Name, "_")
	for i, word := range words {
		words[i] = caser.String(strings.ToLower(word))
	}
	return strings.Join(words, " ")
}

// builtins are the variables every installation offers. Date entries must
// stay in sync with the generator's reserved token table; a test enforces
// this.
var builtins = []Variable{
	{Name: "YYYY", Description: "Four-digit year", Example: "2024", Category: CategoryDate},
	{Name: "YY", Description: "Two-digit year", Example: "24", Category: CategoryDate},
	{Name: "MM", Description: "Two-digit month", Example: "03", Category: CategoryDate},
	{Name: "MMM", Description: "Three-letter month abbreviation", Example: "Mar", Category: CategoryDate},
	{Name: "DD", Description: "Two-digit day of month", Example: "05", Category: CategoryDate},
	{Name: "project_name", Description: "Name of the project the file belongs to", Example: "Acme Website", Category: CategoryProject},
	{Name: "client_name", Description: "Client or customer the work is for", Example: "Acme Corp", Category: CategoryProject},
	{Name: "document_type", Description: "Kind of document", Example: "invoice", Category: CategoryFile},
	{Name: "original_name", Description: "Original file name without extension", Example: "scan0042", Category: CategoryFile},
	{Name: "counter", Description: "Sequential counter assigned by the caller", Example: "007", Category: CategoryFile},
}

// Catalog is an immutable-after-load set of variables indexed by name.
type Catalog struct {
	vars   []Variable
	byName map[string]Variable
}

// Builtin returns the catalog of built-in variables.
func Builtin() *Catalog {
	return newCatalog(builtins)
}

// Load returns the built-in catalog merged with custom variables from a
// YAML file. Custom entries override builtins of the same name, except
// reserved date tokens which cannot be redefined. An empty path returns
// the builtins.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var custom []Variable
	if err := yaml.Unmarshal(data, &custom); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	merged := make([]Variable, len(builtins), len(builtins)+len(custom))
	copy(merged, builtins)
	for _, v := range custom {
		if v.Name == "" {
			return nil, fmt.Errorf("catalog file %s: entry with empty name", path)
		}
		if namegen.IsDateToken(v.Name) {
			return nil, fmt.Errorf("catalog file %s: %q is a reserved date token", path, v.Name)
		}
		if v.Category == "" {
			v.Category = CategoryCustom
		}
		if i := indexOf(merged, v.Name); i >= 0 {
			merged[i] = v
		} else {
			merged = append(merged, v)
		}
	}
	return newCatalog(merged), nil
}

func newCatalog(vars []Variable) *Catalog {
	byName := make(map[string]Variable, len(vars))
	for _, v := range vars {
		byName[v.Name] = v
	}
	return &Catalog{vars: vars, byName: byName}
}

func indexOf(vars []Variable, name string) int {
	for i, v := range vars {
		if v.Name == name {
			return i
		}
	}
	return -1
}

// Lookup returns the variable with the given name.
func (c *Catalog) Lookup(name string) (Variable, bool) {
	v, ok := c.byName[name]
	return v, ok
}

// Variables returns all entries, date tokens first, then the rest sorted
// by category and name.
func (c *Catalog) Variables() []Variable {
	out := make([]Variable, len(c.vars))
	copy(out, c.vars)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			if out[i].Category == CategoryDate {
				return true
			}
			if out[j].Category == CategoryDate {
				return false
			}
			return out[i].Category < out[j].Category
		}
		if out[i].Category == CategoryDate {
			return false // keep builtin date order
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Category returns the entries in one category.
func (c *Catalog) Category(category string) []Variable {
	var out []Variable
	for _, v := range c.Variables() {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}
