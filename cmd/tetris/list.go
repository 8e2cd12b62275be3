package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all play modes",
	Long:  `Shows a list of all registered play modes.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "ID", "Control", "Title")
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "--", "-------", "-----")

	for _, m := range modes {
		control := "player"
		if !m.Interactive {
			control = "autopilot"
		}
		fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, m.ID, control, m.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tetris play <id>' to play a mode.")
}
