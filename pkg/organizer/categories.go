package organizer

import (
	"fmt"
	"strings"

	"tableflip.dev/thinktank/pkg/item"
)

// Categories returns the prompt categories in creation order.
func (o *Organizer) Categories() []item.Category {
	return o.session.Categories
}

// CreateCategory adds a named category.
func (o *Organizer) CreateCategory(name string) (item.Category, error) {
	if strings.TrimSpace(name) == "" {
		return item.Category{}, ErrLabelRequired
	}
	c := item.NewCategory(name)
	out := make([]item.Category, 0, len(o.session.Categories)+1)
	out = append(out, o.session.Categories...)
	o.session.Categories = append(out, c)
	o.log.Printf("created category %s %q", c.ID, c.Name)
	return c, nil
}

// RenameCategory changes a category's name.
func (o *Organizer) RenameCategory(id, name string) (item.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return item.Category{}, ErrLabelRequired
	}
	idx := o.categoryIndex(id)
	if idx < 0 {
		return item.Category{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, id)
	}
	out := append([]item.Category(nil), o.session.Categories...)
	out[idx].Name = name
	o.session.Categories = out
	return out[idx], nil
}

// DeleteCategory removes a category. Its prompts stay, ungrouped.
func (o *Organizer) DeleteCategory(id string) error {
	idx := o.categoryIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, id)
	}
	cats := make([]item.Category, 0, len(o.session.Categories)-1)
	cats = append(cats, o.session.Categories[:idx]...)
	o.session.Categories = append(cats, o.session.Categories[idx+1:]...)

	prompts := append([]item.Item(nil), o.session.Prompts...)
	orphaned := 0
	for i := range prompts {
		if prompts[i].CategoryID == id {
			prompts[i].CategoryID = ""
			orphaned++
		}
	}
	o.session.Prompts = prompts
	o.log.Printf("deleted category %s, %d prompts ungrouped", id, orphaned)
	return nil
}

// AssignCategory files a prompt under a category. An empty categoryID
// clears the assignment.
func (o *Organizer) AssignCategory(promptID, categoryID string) (item.Item, error) {
	if categoryID != "" && o.categoryIndex(categoryID) < 0 {
		return item.Item{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryID)
	}
	return o.update(promptID, func(it item.Item) (item.Item, error) {
		if it.Kind != item.KindPrompt {
			return it, fmt.Errorf("%w: %s is a %s", ErrWrongKind, it.ID, it.Kind)
		}
		it.CategoryID = categoryID
		return it, nil
	})
}

func (o *Organizer) categoryIndex(id string) int {
	for i, c := range o.session.Categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}
