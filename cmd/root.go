package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "swaralipi",
	Short: "Letter notation parser",
	Long:  `Parses line-oriented letter notation (number, western, sargam, bhatkhande, tabla) into a typed, rhythm-analyzed document.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
