package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Go straight to the game menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}
