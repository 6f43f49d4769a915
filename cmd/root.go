package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront catalog and cart toolbox",
	Run: func(cmd *cobra.Command, args []string) {
		// ASCII banner when run bare (random font each run)
		fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
		fig := figure.NewFigure("Storefront ->", fonts[rand.Intn(len(fonts))], true)
		fig.Print()
		fmt.Println()
		cmd.Help()
	},
}

// Execute merges registered commands into root and runs the CLI.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
