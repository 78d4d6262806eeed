package domain

// CalculatorCategory groups related calculators in the catalog shell.
type CalculatorCategory struct {
	Slug        string
	Name        string
	Description string
	SortOrder   int
}

// Calculator is catalog metadata for one calculator page. The numeric logic
// itself lives in internal/calc; the catalog only knows how to present it.
type Calculator struct {
	Slug         string
	Name         string
	Description  string
	CategorySlug string
	SortOrder    int
}
