package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sdejongh/sortnorris/pkg/catalog"
	"github.com/sdejongh/sortnorris/pkg/models"
)

// NewCategoriesCommand creates the categories command
func NewCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories and their extensions",
		Long:  `Display every category folder and the file extensions that classify into it.`,
		Run: func(cmd *cobra.Command, args []string) {
			cat := catalog.New()
			heading := color.New(color.Bold)

			for _, category := range models.AllCategories() {
				fmt.Println(heading.Sprint(category.FolderName()))

				exts := cat.Extensions(category)
				if len(exts) == 0 {
					fmt.Println("  (fallback for unknown or missing extensions)")
				} else {
					fmt.Printf("  %s\n", strings.Join(exts, ", "))
				}
				fmt.Println()
			}
		},
	}
}
