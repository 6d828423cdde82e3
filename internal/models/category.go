package models

// Category is a row of the global category registry.
type Category struct {
	Name      string `db:"name"`
	Type      string `db:"category_type"`
	IsDefault bool   `db:"is_default"`
}
