package domain

// Kind tells whether an entry (and the category tagging it) is an expense or an income.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// IsValid reports whether k is expense or income.
func (k Kind) IsValid() bool {
	return k == KindExpense || k == KindIncome
}

// Category is an income or expense tag. Name is the key.
type Category struct {
	Name      string `json:"name"`
	Type      Kind   `json:"type"`
	IsDefault bool   `json:"isDefault"`
}

// TransferCategory is the category stored on both legs of a transfer. It is reserved.
const TransferCategory = "Transfer"

// FallbackCategory is used when an imported row names an unknown category.
const FallbackCategory = "Other"

// DefaultCategories returns the built-in category set seeded on first use and used
// when the store cannot be read.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Food & Dining", Type: KindExpense, IsDefault: true},
		{Name: "Transportation", Type: KindExpense, IsDefault: true},
		{Name: "Shopping", Type: KindExpense, IsDefault: true},
		{Name: "Entertainment", Type: KindExpense, IsDefault: true},
		{Name: "Bills & Utilities", Type: KindExpense, IsDefault: true},
		{Name: "Healthcare", Type: KindExpense, IsDefault: true},
		{Name: "Income", Type: KindIncome, IsDefault: true},
		{Name: "Other", Type: KindExpense, IsDefault: true},
	}
}

// CategorySource tells where a category list came from.
type CategorySource string

const (
	CategorySourceStore    CategorySource = "store"
	CategorySourceDefaults CategorySource = "defaults"
)

// CategoryList is the outcome of reading the category registry. When the store is
// unavailable Source is CategorySourceDefaults and Cause holds the store error.
type CategoryList struct {
	Categories []Category     `json:"categories"`
	Source     CategorySource `json:"source"`
	Cause      error          `json:"-"`
}

// FromDefaults reports whether the list fell back to the built-in set.
func (l CategoryList) FromDefaults() bool {
	return l.Source == CategorySourceDefaults
}
