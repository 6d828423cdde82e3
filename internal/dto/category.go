package dto

import "github.com/SscSPs/ledgerbook/internal/core/domain"

// CreateCategoryRequest defines the data needed to add a category.
type CreateCategoryRequest struct {
	Name string      `json:"name" binding:"required"`
	Type domain.Kind `json:"type" binding:"required,oneof=expense income"`
}

// ListCategoriesResponse carries the categories and where they came from.
// Source is "defaults" when the store could not be read.
type ListCategoriesResponse struct {
	Categories []domain.Category     `json:"categories"`
	Source     domain.CategorySource `json:"source"`
	Warning    string                `json:"warning,omitempty"`
}

// ToListCategoriesResponse converts a domain.CategoryList to its DTO
func ToListCategoriesResponse(list domain.CategoryList) ListCategoriesResponse {
	resp := ListCategoriesResponse{
		Categories: list.Categories,
		Source:     list.Source,
	}
	if resp.Categories == nil {
		resp.Categories = []domain.Category{}
	}
	if list.Cause != nil {
		resp.Warning = "category store unavailable, built-in defaults returned"
	}
	return resp
}
