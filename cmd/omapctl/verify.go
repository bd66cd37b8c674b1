package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ordkit/internal/kvtext"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Parse a document and check its structure",
		Long: `The verify command parses a document and checks that every section and
name is consistent. With --strict it also rejects names repeated within a
section.

Example:
  omapctl verify app.conf --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

func runVerify(args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	if err := kvtext.Verify(doc); err != nil {
		return fmt.Errorf("%s is inconsistent: %w", args[0], err)
	}

	sections, values := kvtext.Count(doc)
	if jsonOut {
		return printJSON(map[string]any{
			"file":     args[0],
			"valid":    true,
			"sections": sections,
			"values":   values,
		})
	}
	printInfo("✓ %s: %d sections, %d values\n", args[0], sections, values)
	return nil
}
