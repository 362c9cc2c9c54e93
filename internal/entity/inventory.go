package entity

import "strings"

// Stack is one inventory line: an item and how many are held.
type Stack struct {
	Item  *Item
	Count int
}

// Inventory maps items to positive counts, preserving first-acquired order.
// A zero-count entry is never kept.
type Inventory struct {
	stacks []Stack
}

func (inv *Inventory) index(name string) int {
	for i, s := range inv.stacks {
		if s.Item.Name == name {
			return i
		}
	}
	return -1
}

// Add increases the held count of it by n. Non-positive n is ignored.
func (inv *Inventory) Add(it *Item, n int) {
	if it == nil || n <= 0 {
		return
	}
	if i := inv.index(it.Name); i >= 0 {
		inv.stacks[i].Count += n
		return
	}
	inv.stacks = append(inv.stacks, Stack{Item: it, Count: n})
}

// Remove takes n of it out of the inventory. It reports false, leaving the
// inventory untouched, when fewer than n are held or n is not positive.
func (inv *Inventory) Remove(it *Item, n int) bool {
	if it == nil || n <= 0 {
		return false
	}
	i := inv.index(it.Name)
	if i < 0 || inv.stacks[i].Count < n {
		return false
	}
	inv.stacks[i].Count -= n
	if inv.stacks[i].Count == 0 {
		inv.stacks = append(inv.stacks[:i], inv.stacks[i+1:]...)
	}
	return true
}

// Count returns how many of the named item are held (case-insensitive).
func (inv *Inventory) Count(name string) int {
	if s, ok := inv.find(name); ok {
		return s.Count
	}
	return 0
}

// Find returns the held item whose name matches (case-insensitive), or nil.
func (inv *Inventory) Find(name string) *Item {
	if s, ok := inv.find(name); ok {
		return s.Item
	}
	return nil
}

func (inv *Inventory) find(name string) (Stack, bool) {
	name = strings.TrimSpace(name)
	for _, s := range inv.stacks {
		if strings.EqualFold(s.Item.Name, name) {
			return s, true
		}
	}
	return Stack{}, false
}

// Stacks returns a copy of the inventory lines in acquisition order.
func (inv *Inventory) Stacks() []Stack {
	out := make([]Stack, len(inv.stacks))
	copy(out, inv.stacks)
	return out
}

// Consumables lists held consumable items in acquisition order.
func (inv *Inventory) Consumables() []*Item {
	var out []*Item
	for _, s := range inv.stacks {
		if s.Item.IsConsumable() {
			out = append(out, s.Item)
		}
	}
	return out
}

func (inv *Inventory) Len() int { return len(inv.stacks) }

func equalFold(a, b string) bool { return strings.EqualFold(a, b) }
