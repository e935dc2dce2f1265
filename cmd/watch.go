package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/swaralipi/swaralipi/constants"
	"github.com/swaralipi/swaralipi/lily"
	"github.com/swaralipi/swaralipi/util"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watches a file and re-renders on change",
	Long:  `Watches a notation file, reparsing on every change and writing a document snapshot plus a LilyPond render into the output directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		watch(args[0])
	},
}

func watch(path string) {
	if err := os.MkdirAll(constants.GetOutDir(), 0777); err != nil {
		panic("Could not create output dir because: " + err.Error())
	}

	debounced := debounce.New(250 * time.Millisecond)
	var lastMod time.Time

	fmt.Printf("Watching %v\n", path)
	renderOnce(path)

	for {
		stat, err := os.Stat(path)
		if err != nil {
			panic("Could not stat watched file because: " + err.Error())
		}
		if stat.ModTime().After(lastMod) {
			lastMod = stat.ModTime()
			debounced(func() { renderOnce(path) })
		}
		time.Sleep(200 * time.Millisecond)
	}
}

func renderOnce(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read watched file because: " + err.Error())
	}

	doc, err := Pipeline(string(data), true)
	if err != nil {
		fmt.Printf("parse failed: %v\n", err)
		return
	}

	outDir := constants.GetOutDir()
	util.CreateBinary(filepath.Join(outDir, constants.SnapshotFile), doc)

	lyPath := filepath.Join(outDir, uuid.New().String()+".ly")
	f, err := os.Create(lyPath)
	if err != nil {
		panic("Could not create render file because: " + err.Error())
	}
	defer f.Close()
	lily.Render(f, doc, nil)
	fmt.Printf("Rendered %v\n", lyPath)
}
