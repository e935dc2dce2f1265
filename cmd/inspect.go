package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/swaralipi/swaralipi/model"
	"github.com/swaralipi/swaralipi/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot>",
	Short: "Inspects a document snapshot",
	Long:  `Inspects a gob document snapshot written by watch.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	doc := util.ReadBinaryOrPanic[*model.Document](path)

	fmt.Printf("title: %v\n", doc.Title)
	fmt.Printf("staves: %v\n", len(doc.Staves()))

	keys := util.GetKeys(doc.Directives)
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("directive %v: %v\n", key, doc.Directives[key])
	}

	for i, stave := range doc.Staves() {
		fmt.Printf("stave %v: system=%v lines=%v\n", i, stave.System, len(stave.Lines))
	}
}
