package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-timber/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings",
	Long:  `Prints the fixed timber key bindings.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(_ *cobra.Command, _ []string) {
	fmt.Println("Timber controls:")
	fmt.Println()
	fmt.Println(tui.KeyTable(tui.DefaultKeyMap()).View())
	fmt.Println()
	fmt.Println("Run 'timber play' to start chopping.")
}
