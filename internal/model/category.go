package model

import "strings"

// Category is a move-quality bucket. Lower values are better moves.
type Category int

// Move quality categories, best first.
const (
	CategoryExcellent Category = iota
	CategoryGreat
	CategoryGood
	CategoryInaccuracy
	CategoryMistake
	CategoryBlunder
)

// NumCategories is the size of the closed category set.
const NumCategories = int(CategoryBlunder) + 1

func (c Category) String() string {
	switch c {
	case CategoryExcellent:
		return "Excellent"
	case CategoryGreat:
		return "Great"
	case CategoryGood:
		return "Good"
	case CategoryInaccuracy:
		return "Inaccuracy"
	case CategoryMistake:
		return "Mistake"
	case CategoryBlunder:
		return "Blunder"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the category by name, so JSON map keys stay readable.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory looks up a category by its display name.
func ParseCategory(name string) (Category, bool) {
	for _, c := range FullCategories {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}
	return 0, false
}

// IsStrong reports whether the category counts toward the strong move rate.
func (c Category) IsStrong() bool {
	return c <= CategoryGood
}

// CategorySet is an ordered subset of categories produced by one review kind.
type CategorySet []Category

// Category sets per review kind.
var (
	// FullCategories is used by full reviews, which grade every move.
	FullCategories = CategorySet{
		CategoryExcellent,
		CategoryGreat,
		CategoryGood,
		CategoryInaccuracy,
		CategoryMistake,
		CategoryBlunder,
	}

	// FastCategories is used by fast reviews. Only the worst moves are analyzed,
	// so Excellent and Great are never distinguished.
	FastCategories = CategorySet{
		CategoryGood,
		CategoryInaccuracy,
		CategoryMistake,
		CategoryBlunder,
	}
)

// Contains reports whether c is part of the set.
func (s CategorySet) Contains(c Category) bool {
	for _, cat := range s {
		if cat == c {
			return true
		}
	}
	return false
}

// CategoryCounts holds one counter per category.
type CategoryCounts [NumCategories]int

// Total returns the number of moves counted across all categories.
func (c CategoryCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Strong returns the number of moves in the top three categories.
func (c CategoryCounts) Strong() int {
	return c[CategoryExcellent] + c[CategoryGreat] + c[CategoryGood]
}
