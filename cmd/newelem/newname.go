package main

import (
	"fmt"

	"newelem/cmd/newelem/cli"
	"newelem/internal/allocate"

	"github.com/spf13/cobra"
)

// NewNameCmd creates the newname command
func NewNameCmd() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "newname [type]",
		Short: "Allocate the next free filename for a content type",
		Long: `Resolve the configuration document, look up the naming pattern of the
given content type, and print the first numbered filename not already in
use in the pattern's folder. With --pattern, allocate directly from a
pattern instead of a configured type.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeCfg, store, err := loadConfiguration()
			if err != nil {
				fmt.Println(cli.RenderError(err))
				return err
			}

			p := pattern
			if p == "" {
				if len(args) == 0 {
					return fmt.Errorf("either a type name or --pattern is required")
				}
				item, ok := typeCfg.Item(args[0])
				if !ok {
					return fmt.Errorf("unknown type %q (known: %v)", args[0], typeCfg.TypeNames())
				}
				p = item.Pattern
			}

			allocator := allocate.New(store, store.TempFileName)
			name, err := allocator.Allocate(p)
			if err != nil {
				fmt.Println(cli.RenderError(err))
				return err
			}

			fmt.Println(cli.Value.Render(name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Naming pattern to allocate from (bypasses the type lookup)")

	return cmd
}
