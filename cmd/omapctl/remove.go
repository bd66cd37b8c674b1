package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ordkit/cmd/omapctl/logger"
	"github.com/joshuapare/ordkit/pkg/omap"
)

var (
	removeAt     int
	removeBackup bool
)

func init() {
	cmd := newRemoveCmd()
	cmd.Flags().IntVar(&removeAt, "at", -1, "Remove the name at this position instead of by name")
	cmd.Flags().BoolVar(&removeBackup, "backup", false, "Copy the file to <file>.bak first")
	rootCmd.AddCommand(cmd)
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <file> <section> [name]",
		Short: "Remove a name, a position, or a whole section",
		Long: `The remove command deletes one name from a section, the name at a
position (--at), or, with neither, the whole section. Later entries move one
place up.

Example:
  omapctl remove app.conf Server Port
  omapctl remove app.conf Server --at 0
  omapctl remove app.conf Obsolete`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args)
		},
	}
	return cmd
}

func runRemove(args []string) error {
	path, section := args[0], args[1]

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	var removed string
	switch {
	case len(args) == 3 && removeAt >= 0:
		return errors.New("give either a name or --at, not both")

	case len(args) == 3:
		sec, err := doc.Get(section)
		if err != nil {
			return fmt.Errorf("section [%s]: %w", section, err)
		}
		if !sec.Remove(args[2]) {
			return fmt.Errorf("section [%s]: %w: %s", section, omap.ErrKeyNotFound, args[2])
		}
		removed = args[2]

	case removeAt >= 0:
		sec, err := doc.Get(section)
		if err != nil {
			return fmt.Errorf("section [%s]: %w", section, err)
		}
		name, err := sec.ByIndex().Key(removeAt)
		if err != nil {
			return fmt.Errorf("section [%s]: %w", section, err)
		}
		if err := sec.RemoveAt(removeAt); err != nil {
			return fmt.Errorf("section [%s]: %w", section, err)
		}
		removed = name

	default:
		if !doc.Remove(section) {
			return fmt.Errorf("section [%s]: %w", section, omap.ErrKeyNotFound)
		}
	}

	if err := saveDocument(path, doc, removeBackup); err != nil {
		return err
	}
	logger.Edit(path, "remove", "section", section, "name", removed)

	if jsonOut {
		return printJSON(map[string]any{
			"section": section,
			"name":    removed,
			"success": true,
		})
	}
	if len(args) == 2 && removeAt < 0 {
		printInfo("Removed section [%s]\n", section)
	} else {
		printInfo("Removed [%s] %s\n", section, removed)
	}
	return nil
}
