package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swaralipi/swaralipi/db"
	"github.com/swaralipi/swaralipi/lily"
	"github.com/swaralipi/swaralipi/model"
)

var lilyWithMetadata bool

func init() {
	lilyCmd.Flags().BoolVar(&lilyWithMetadata, "metadata", false, "look up tune metadata for the header")
	rootCmd.AddCommand(lilyCmd)
}

var lilyCmd = &cobra.Command{
	Use:   "lily [file]",
	Short: "Renders LilyPond source",
	Long:  `Renders LilyPond source`,
	Run: func(cmd *cobra.Command, args []string) {
		input := readInput(args)
		doc, err := Pipeline(input, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse failed: %v\n", err)
			os.Exit(1)
		}

		var meta *model.TuneMetadata
		if lilyWithMetadata && doc.Title != "" {
			metas := db.GetTuneMetadatas([]string{doc.Title})
			if m, ok := metas[doc.Title]; ok {
				meta = &m
			}
		}
		lily.Render(os.Stdout, doc, meta)
	},
}
