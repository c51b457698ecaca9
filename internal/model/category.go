package model

// Category is one entry of the fixed classification catalog.
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
	Order int // total ordering index, used as the category sort key
}

// DefaultCategoryID is the fallback for unknown or missing category ids.
// Stored records keep whatever id they were written with; the fallback is
// applied at read time only.
const DefaultCategoryID = "other"

// categories is the static catalog. Not user-editable.
var categories = []Category{
	{ID: "food", Name: "食費", Icon: "🍙", Color: "#FF6B6B", Order: 1},
	{ID: "transport", Name: "交通費", Icon: "🚃", Color: "#4ECDC4", Order: 2},
	{ID: "entertainment", Name: "娯楽", Icon: "🎮", Color: "#FFE66D", Order: 3},
	{ID: "utilities", Name: "光熱費", Icon: "💡", Color: "#95E1D3", Order: 4},
	{ID: "other", Name: "その他", Icon: "📦", Color: "#A8A8A8", Order: 5},
}

// Categories returns the catalog in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID looks up a catalog entry by id.
func CategoryByID(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// LookupCategory resolves an id to its catalog entry, falling back to the
// default category when the id is unknown or empty.
func LookupCategory(id string) Category {
	if c, ok := CategoryByID(id); ok {
		return c
	}
	c, _ := CategoryByID(DefaultCategoryID)
	return c
}

// ValidCategoryID reports whether id names a catalog entry.
func ValidCategoryID(id string) bool {
	_, ok := CategoryByID(id)
	return ok
}
