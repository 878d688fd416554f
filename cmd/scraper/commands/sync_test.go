// ABOUTME: Tests for sync command group structure
// ABOUTME: Verifies subcommands and wipe confirmation flag

package commands

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewSyncCmd(t *testing.T) {
	cmd := NewSyncCmd()

	if cmd.Use != "sync" {
		t.Errorf("Use = %q, want %q", cmd.Use, "sync")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}

	// Should mention Charm cloud sync
	if !strings.Contains(cmd.Long, "Charm") {
		t.Error("Long description should mention Charm")
	}
}

func TestSyncCmd_Subcommands(t *testing.T) {
	cmd := NewSyncCmd()

	expectedSubcommands := []string{
		"status",
		"now",
		"wipe",
		"keys",
		"unlink",
	}

	for _, subCmdName := range expectedSubcommands {
		t.Run(subCmdName, func(t *testing.T) {
			found := false
			for _, sub := range cmd.Commands() {
				if sub.Use == subCmdName || strings.HasPrefix(sub.Use, subCmdName+" ") {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Subcommand %q not found", subCmdName)
			}
		})
	}
}

func TestSyncCmd_StatusSubcommand(t *testing.T) {
	cmd := NewSyncCmd()

	var statusCmd *cobra.Command
	for _, sub := range cmd.Commands() {
		if sub.Use == "status" {
			statusCmd = sub
			break
		}
	}

	if statusCmd == nil {
		t.Fatal("status subcommand not found")
	}

	if statusCmd.Short == "" {
		t.Error("status subcommand Short description should not be empty")
	}

	if statusCmd.RunE == nil {
		t.Error("status subcommand RunE should be set")
	}
}

func TestSyncCmd_WipeRequiresConfirm(t *testing.T) {
	cmd := NewSyncCmd()

	var wipeCmd *cobra.Command
	for _, sub := range cmd.Commands() {
		if sub.Use == "wipe" {
			wipeCmd = sub
			break
		}
	}

	if wipeCmd == nil {
		t.Fatal("wipe subcommand not found")
	}

	confirmFlag := wipeCmd.Flags().Lookup("confirm")
	if confirmFlag == nil {
		t.Fatal("--confirm flag not found")
	}
	if confirmFlag.DefValue != "false" {
		t.Errorf("--confirm default = %q, want %q", confirmFlag.DefValue, "false")
	}

	// Wipe without --confirm must not touch storage; it prints a warning
	// and returns nil without opening the store.
	if !strings.Contains(wipeCmd.Long, "WARNING") {
		t.Error("wipe Long description should carry a warning")
	}
}
