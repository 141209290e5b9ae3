package main

import (
	"fmt"

	"newelem/cmd/newelem/cli"

	"github.com/spf13/cobra"
)

// NewTypesCmd creates the types command
func NewTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Show the resolved type configuration",
		Long:  `Resolve the configuration document and print the source, destination folder, and naming pattern of every configured content type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			typeCfg, _, err := loadConfiguration()
			if err != nil {
				fmt.Println(cli.RenderError(err))
				return err
			}

			fmt.Println(cli.Title.Render(fmt.Sprintf("Configured types (%d)", typeCfg.Len())))
			for _, name := range typeCfg.TypeNames() {
				item, _ := typeCfg.Item(name)
				fmt.Println(cli.Header.Render(name))
				fmt.Print(cli.RenderKV([][2]string{
					{"source", item.Source},
					{"folder", item.Folder},
					{"pattern", item.Pattern},
				}))
			}
			return nil
		},
	}
}

// NewElementsCmd creates the elements command
func NewElementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the eligible new-element resources",
		Long:  `Resolve the configuration document and print the prototype resources whose destination folder passed the permission checks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			typeCfg, _, err := loadConfiguration()
			if err != nil {
				fmt.Println(cli.RenderError(err))
				return err
			}

			elements := typeCfg.EligibleNewElements()
			if len(elements) == 0 {
				fmt.Println(cli.Dim.Render("No eligible new elements."))
				return nil
			}
			fmt.Println(cli.Title.Render(fmt.Sprintf("Eligible new elements (%d)", len(elements))))
			for _, res := range elements {
				fmt.Printf("  %s %s\n", cli.Value.Render(res.Path), cli.Dim.Render("("+res.Type+")"))
			}
			return nil
		},
	}
}
