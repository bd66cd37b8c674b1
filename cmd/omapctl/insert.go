package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ordkit/cmd/omapctl/logger"
	"github.com/joshuapare/ordkit/internal/kvtext"
)

var insertBackup bool

func init() {
	cmd := newInsertCmd()
	cmd.Flags().BoolVar(&insertBackup, "backup", false, "Copy the file to <file>.bak first")
	rootCmd.AddCommand(cmd)
}

func newInsertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert <file> <section> <position> <name> <value>",
		Short: "Insert a new name at a position",
		Long: `The insert command places a new name at a position inside a section;
names at that position and later move one place down. The position may equal
the number of names, which appends. Inserting a name the section already
holds is an error.

Example:
  omapctl insert app.conf Server 0 Scheme https`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert(args)
		},
	}
	return cmd
}

func runInsert(args []string) error {
	path, section, posArg, name, value := args[0], args[1], args[2], args[3], args[4]

	pos, err := strconv.Atoi(posArg)
	if err != nil {
		return fmt.Errorf("invalid position %q: %w", posArg, err)
	}

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	sec := kvtext.EnsureSection(doc, section)
	if err := sec.Insert(pos, name, value); err != nil {
		return fmt.Errorf("section [%s]: %w", section, err)
	}

	if err := saveDocument(path, doc, insertBackup); err != nil {
		return err
	}
	logger.Edit(path, "insert", "section", section, "name", name, "position", pos)

	if jsonOut {
		return printJSON(map[string]any{
			"section":  section,
			"name":     name,
			"position": pos,
			"success":  true,
		})
	}
	printInfo("Inserted [%s] %s at position %d\n", section, name, pos)
	return nil
}
