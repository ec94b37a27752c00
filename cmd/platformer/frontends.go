package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List the available frontends",
	Long:  `Shows every frontend the game can be played in.`,
	Run:   runFrontends,
}

func runFrontends(cmd *cobra.Command, args []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	fmt.Println("Available frontends:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, f := range frontends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play --frontend <id>' to play.")
}
