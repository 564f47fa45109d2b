package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bullion/internal/config"
)

var onceLanguage string

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Run one refresh cycle and print the board",
	Run: func(cmd *cobra.Command, _ []string) {
		c := newCore()
		c.cycle.RunCycle(cmd.Context())

		_, err := fmt.Fprint(cmd.OutOrStdout(), c.renderer.Text(onceLanguage, c.board.Snapshot()))
		cobra.CheckErr(err)
	},
}

func init() {
	onceCmd.Flags().StringVar(&onceLanguage, "lang", config.DefaultLanguageCode, "language of the printed board (en, ar)")
}
