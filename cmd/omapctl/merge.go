package main

import (
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/ordkit/cmd/omapctl/logger"
	"github.com/joshuapare/ordkit/internal/kvtext"
)

var (
	mergeBackup bool
	mergeDryRun bool
)

func init() {
	cmd := newMergeCmd()
	cmd.Flags().BoolVar(&mergeBackup, "backup", false, "Copy the file to <file>.bak first")
	cmd.Flags().BoolVar(&mergeDryRun, "dry-run", false, "Merge in memory without writing")
	rootCmd.AddCommand(cmd)
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <target> <source>...",
		Short: "Append the sections of other documents",
		Long: `The merge command appends each source document to the target in order.
Sections the target already has receive the source's names after their own;
new sections are appended. A name the target section already holds stops the
merge with an error and nothing is written.

Example:
  omapctl merge app.conf defaults.conf local.conf
  omapctl merge app.conf extra.conf --dry-run`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(args)
		},
	}
	return cmd
}

func runMerge(args []string) error {
	target := args[0]

	doc, err := loadDocument(target)
	if err != nil {
		return err
	}
	before, _ := kvtext.Count(doc)

	sources, err := loadSources(args[1:])
	if err != nil {
		return err
	}
	for i, src := range args[1:] {
		if err := kvtext.Merge(doc, sources[i]); err != nil {
			logger.Warn("merge stopped", "target", target, "source", src, "error", err)
			return err
		}
		printVerbose("Merged %s\n", src)
	}

	sections, values := kvtext.Count(doc)
	if !mergeDryRun {
		if err := saveDocument(target, doc, mergeBackup); err != nil {
			return err
		}
	}
	if mergeDryRun {
		logger.Document(target).Info("merge dry run", "sources", len(args)-1, "sections", sections)
	} else {
		logger.Edit(target, "merge", "sources", len(args)-1, "new_sections", sections-before)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"target":       target,
			"sources":      args[1:],
			"sections":     sections,
			"new_sections": sections - before,
			"values":       values,
			"dry_run":      mergeDryRun,
		})
	}
	printInfo("Merged %d document(s) into %s: %d sections (%d new), %d values\n",
		len(args)-1, target, sections, sections-before, values)
	if mergeDryRun {
		printInfo("Dry run: %s not written\n", target)
	}
	return nil
}

// loadSources parses every path concurrently. The result is in path order.
func loadSources(paths []string) ([]*kvtext.Document, error) {
	docs := make([]*kvtext.Document, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			doc, err := loadDocument(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
