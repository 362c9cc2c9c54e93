// Package content decodes the static content table (items, recipes, loot and
// zone definitions) and builds fresh zones from it.
package content

import (
	"errors"
	"strings"

	"static-decay/assets"
	"static-decay/internal/entity"
)

var (
	// ErrUnknownItem reports a reference to an item the table does not define.
	ErrUnknownItem = errors.New("unknown item")
	// ErrBadContent reports any other inconsistency in the content table.
	ErrBadContent = errors.New("bad content")
)

// Ingredient is one line of a recipe.
type Ingredient struct {
	Item  *entity.Item
	Count int
}

// Recipe turns a fixed set of ingredients into one result item.
type Recipe struct {
	Result      *entity.Item
	Ingredients []Ingredient
}

// Loot is one possible find when searching a container.
type Loot struct {
	Item    *entity.Item
	Message string
}

// Table is read-only after Load.
type Table struct {
	start   string
	items   []*entity.Item
	byName  map[string]*entity.Item
	recipes []Recipe
	loot    []Loot
	zones   []*ZoneSpec
}

// Default loads the embedded content table.
func Default() (*Table, error) {
	return Load(assets.ContentYAML)
}

// LookupItem finds an item by name, ignoring case and surrounding space.
func (t *Table) LookupItem(name string) (*entity.Item, bool) {
	it, ok := t.byName[itemKey(name)]
	return it, ok
}

// Items returns every item in table order.
func (t *Table) Items() []*entity.Item { return t.items }

// Recipes returns the recipes in their listed order. Indices are stable.
func (t *Table) Recipes() []Recipe { return t.recipes }

// Loot returns the container outcomes. A roll past the end finds nothing.
func (t *Table) Loot() []Loot { return t.loot }

// Zones returns the zone sequence in story order.
func (t *Table) Zones() []*ZoneSpec { return t.zones }

// StartMessage is logged once when a new game begins.
func (t *Table) StartMessage() string { return t.start }

func itemKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
