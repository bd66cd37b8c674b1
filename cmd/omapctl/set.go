package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ordkit/cmd/omapctl/logger"
	"github.com/joshuapare/ordkit/internal/kvtext"
)

var setBackup bool

func init() {
	cmd := newSetCmd()
	cmd.Flags().BoolVar(&setBackup, "backup", false, "Copy the file to <file>.bak first")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <section> <name> <value>",
		Short: "Set a value, appending it when the name is new",
		Long: `The set command stores a value under a name. An existing name keeps its
position and spelling; a new name is appended to the section, and a new
section is appended to the file.

Example:
  omapctl set app.conf Server Host example.org
  omapctl set app.conf Server Port 8080 --backup`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path, section, name, value := args[0], args[1], args[2], args[3]

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	sec := kvtext.EnsureSection(doc, section)
	existed := sec.ContainsKey(name)
	if err := sec.Set(name, value); err != nil {
		return fmt.Errorf("section [%s]: %w", section, err)
	}
	pos := sec.IndexOf(name)

	if err := saveDocument(path, doc, setBackup); err != nil {
		return err
	}
	logger.Edit(path, "set", "section", section, "name", name, "position", pos, "replaced", existed)

	if jsonOut {
		return printJSON(map[string]any{
			"section":  section,
			"name":     name,
			"position": pos,
			"replaced": existed,
			"success":  true,
		})
	}
	if existed {
		printInfo("Replaced [%s] %s at position %d\n", section, name, pos)
	} else {
		printInfo("Added [%s] %s at position %d\n", section, name, pos)
	}
	return nil
}
