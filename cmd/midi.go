package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swaralipi/swaralipi/midi"
)

var midiOut string

func init() {
	midiCmd.Flags().StringVarP(&midiOut, "out", "o", "tune.mid", "output path")
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi [file]",
	Short: "Writes a Standard MIDI File",
	Long:  `Writes a Standard MIDI File`,
	Run: func(cmd *cobra.Command, args []string) {
		input := readInput(args)
		doc, err := Pipeline(input, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse failed: %v\n", err)
			os.Exit(1)
		}
		if err := midi.WriteFile(doc, midiOut); err != nil {
			panic("Could not write midi file because: " + err.Error())
		}
		fmt.Printf("Wrote %v\n", midiOut)
	},
}
