package cli

import (
	"fmt"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/spf13/cobra"
)

func newCategoryCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage the shared category list",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := a.services.Category.GetCategories(cmd.Context())
			return a.render.emit(dto.ToListCategoriesResponse(list), func() string {
				rows := make([][]string, 0, len(list.Categories))
				for _, c := range list.Categories {
					def := ""
					if c.IsDefault {
						def = "yes"
					}
					rows = append(rows, []string{c.Name, string(c.Type), def})
				}
				doc := heading("Categories") + table([]string{"Name", "Type", "Default"}, rows)
				if list.Cause != nil {
					doc += "\n> category store unavailable, built-in defaults shown\n"
				}
				return doc
			})
		},
	})

	var kind string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := a.services.Category.AddCategory(cmd.Context(), dto.CreateCategoryRequest{Name: args[0], Type: domain.Kind(kind)})
			if err != nil {
				return err
			}
			return a.render.emit(category, func() string {
				return fmt.Sprintf("Added %s category %q.\n", category.Type, category.Name)
			})
		},
	}
	add.Flags().StringVar(&kind, "type", string(domain.KindExpense), "expense or income")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a category that no transaction uses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.services.Category.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.render.emit(map[string]string{"deletedCategory": args[0]}, func() string {
				return fmt.Sprintf("Deleted category %q.\n", args[0])
			})
		},
	})

	return cmd
}
