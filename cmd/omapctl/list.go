package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/joshuapare/ordkit/internal/kvtext"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <file> [section]",
		Short: "List sections, or the names in one section",
		Long: `The list command prints every section with its value count, or, when a
section is given, every name in that section with its position and value.

Example:
  omapctl list app.conf
  omapctl list app.conf Server
  omapctl list app.conf Server --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

type sectionSummary struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Values   int    `json:"values"`
}

type valueInfo struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Value    string `json:"value"`
}

func runList(args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return listSections(doc)
	}
	sec, err := doc.Get(args[1])
	if err != nil {
		return fmt.Errorf("section [%s]: %w", args[1], err)
	}
	return listValues(args[1], sec)
}

func listSections(doc *kvtext.Document) error {
	summaries := make([]sectionSummary, 0, doc.Len())
	i := 0
	for name, sec := range doc.All() {
		summaries = append(summaries, sectionSummary{Position: i, Name: name, Values: sec.Len()})
		i++
	}

	if jsonOut {
		return printJSON(summaries)
	}
	data := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		data = append(data, []string{strconv.Itoa(s.Position), "[" + s.Name + "]", strconv.Itoa(s.Values)})
	}
	printTable([]string{"POS", "SECTION", "VALUES"}, data)
	return nil
}

func listValues(section string, sec *kvtext.Section) error {
	values := make([]valueInfo, 0, sec.Len())
	i := 0
	for name, value := range sec.All() {
		values = append(values, valueInfo{Position: i, Name: name, Value: value})
		i++
	}

	if jsonOut {
		return printJSON(map[string]any{"section": section, "values": values})
	}
	data := make([][]string, 0, len(values))
	for _, v := range values {
		name := v.Name
		if name == "" {
			name = "@"
		}
		data = append(data, []string{strconv.Itoa(v.Position), name, v.Value})
	}
	printTable([]string{"POS", "NAME", "VALUE"}, data)
	return nil
}

// printTable renders rows as left-aligned columns unless in quiet mode.
func printTable(header []string, data [][]string) {
	if quiet {
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
}
