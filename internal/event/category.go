package event

import (
	"fmt"
	"strings"
)

// Category is a bitmask of coarse event families. Each named category
// occupies exactly one bit; an event belonging to several families carries
// the bitwise OR of them.
type Category uint8

// Event categories.
const (
	// CategoryNone is the empty mask. It is not a category and is never
	// OR-ed into an event's mask.
	CategoryNone Category = 0

	CategoryApplication Category = 1 << (iota - 1)
	CategoryInput
	CategoryKeyboard
	CategoryMouse
	CategoryMouseButton
)

var categoryNames = []struct {
	cat  Category
	name string
}{
	{CategoryApplication, "Application"},
	{CategoryInput, "Input"},
	{CategoryKeyboard, "Keyboard"},
	{CategoryMouse, "Mouse"},
	{CategoryMouseButton, "MouseButton"},
}

// AllCategories returns the named categories in bit order.
func AllCategories() []Category {
	cats := make([]Category, len(categoryNames))
	for i, c := range categoryNames {
		cats[i] = c.cat
	}
	return cats
}

// Has reports whether m shares at least one bit with c.
func (m Category) Has(c Category) bool {
	return m&c != 0
}

// String returns the category names joined with "|", e.g. "Input|Keyboard".
func (m Category) String() string {
	if m == CategoryNone {
		return "None"
	}
	var parts []string
	for _, c := range categoryNames {
		if m&c.cat != 0 {
			parts = append(parts, c.name)
		}
	}
	if rest := m &^ (CategoryApplication | CategoryInput | CategoryKeyboard | CategoryMouse | CategoryMouseButton); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseCategory parses a single category name. Matching ignores case and
// accepts "mouse-button" and "mouse_button" for CategoryMouseButton.
func ParseCategory(name string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("-", "", "_", "").Replace(norm)
	for _, c := range categoryNames {
		if strings.ToLower(c.name) == norm {
			return c.cat, nil
		}
	}
	return CategoryNone, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// ParseCategories parses a list of category names into one mask.
func ParseCategories(names []string) (Category, error) {
	var mask Category
	for _, name := range names {
		c, err := ParseCategory(name)
		if err != nil {
			return CategoryNone, err
		}
		mask |= c
	}
	return mask, nil
}
