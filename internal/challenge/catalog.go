package challenge

// catalog holds the seeded challenges with precomputed indices.
type catalog struct {
	categories []Category
	challenges []Challenge
	byID       map[string]*Challenge
	byCategory map[string][]Challenge
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

func buildCatalog(categories []Category, challenges []Challenge) *catalog {
	ct := &catalog{
		categories: categories,
		challenges: challenges,
		byID:       make(map[string]*Challenge, len(challenges)),
		byCategory: make(map[string][]Challenge),
	}
	for i := range ct.challenges {
		ch := &ct.challenges[i]
		ct.byID[ch.ID] = ch
		ct.byCategory[ch.CategoryID] = append(ct.byCategory[ch.CategoryID], *ch)
	}
	return ct
}

// Categories returns all categories in display order.
func Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// ByCategory returns the challenges in a category, in seed order.
func ByCategory(categoryID string) []Challenge {
	src := c.byCategory[categoryID]
	out := make([]Challenge, len(src))
	copy(out, src)
	return out
}

// ByID returns a challenge by ID, or false if unknown.
func ByID(id string) (Challenge, bool) {
	if ch, ok := c.byID[id]; ok {
		return *ch, true
	}
	return Challenge{}, false
}

// Count returns the total number of seeded challenges.
func Count() int {
	return len(c.challenges)
}
