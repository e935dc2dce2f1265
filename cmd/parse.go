package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/swaralipi/swaralipi/model"
	"github.com/swaralipi/swaralipi/parse"
	"github.com/swaralipi/swaralipi/rhythm"
	"github.com/swaralipi/swaralipi/spatial"
)

var parseStage string

func init() {
	parseCmd.Flags().StringVar(&parseStage, "stage", "rhythm", "output stage: raw, rhythm, spans or text")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parses notation to JSON",
	Long:  `Parses notation from a file or stdin and prints the chosen stage as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		input := readInput(args)
		doc, err := Pipeline(input, parseStage != "raw")
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse failed: %v\n", err)
			os.Exit(1)
		}
		printStage(doc, parseStage)
	},
}

func readInput(args []string) string {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			panic("Could not read input file because: " + err.Error())
		}
		return string(data)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		panic("Could not read stdin because: " + err.Error())
	}
	return string(data)
}

// Pipeline runs parsing and, when analyze is set, the spatial and
// rhythm passes.
func Pipeline(input string, analyze bool) (*model.Document, error) {
	doc, err := parse.ParseDocument(input)
	if err != nil {
		return nil, err
	}
	if analyze {
		spatial.BindDocument(doc)
		rhythm.AnalyzeDocument(doc)
	}
	return doc, nil
}

func printStage(doc *model.Document, stage string) {
	switch stage {
	case "text":
		fmt.Print(doc.Text())
	case "spans":
		printJSON(doc.SyntaxSpans())
	default:
		printJSON(doc)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		panic("Could not marshal document because: " + err.Error())
	}
}
