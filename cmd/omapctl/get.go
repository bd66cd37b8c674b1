package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <section> <name>",
		Short: "Print one value",
		Long: `The get command prints the value stored under a name in a section.
Section and name compare case-insensitively; use "" for the unnamed section
or the default (@) name.

Example:
  omapctl get app.conf Server Host
  omapctl get app.conf "" top --json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path, section, name := args[0], args[1], args[2]

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	sec, err := doc.Get(section)
	if err != nil {
		return fmt.Errorf("section [%s]: %w", section, err)
	}
	value, err := sec.Get(name)
	if err != nil {
		return fmt.Errorf("section [%s]: %w", section, err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"section":  section,
			"name":     name,
			"value":    value,
			"position": sec.IndexOf(name),
		})
	}
	printInfo("%s\n", value)
	return nil
}
