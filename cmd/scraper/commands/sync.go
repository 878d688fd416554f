// ABOUTME: Sync commands for Charm cloud synchronization
// ABOUTME: Provides status, now, wipe, keys and unlink management
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alex-peresunko/news-scraper/internal/config"
	"github.com/alex-peresunko/news-scraper/internal/storage"
)

// NewSyncCmd creates the sync command group
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Manage Charm cloud synchronization",
		Long: `Manage synchronization with Charm cloud.

Articles are stored in a local Charm KV database and sync
automatically across devices linked to the same Charm account via
SSH keys.`,
	}

	cmd.AddCommand(newSyncStatusCmd())
	cmd.AddCommand(newSyncNowCmd())
	cmd.AddCommand(newSyncWipeCmd())
	cmd.AddCommand(newSyncKeysCmd())
	cmd.AddCommand(newSyncUnlinkCmd())

	return cmd
}

// openSyncStore loads config and opens the article store for sync commands
func openSyncStore() (*storage.Store, *config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	setupLogging(cfg)

	store, err := storage.Open(storageConfig(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Charm: %w", err)
	}
	return store, cfg, nil
}

func newSyncStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync status and connection info",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := openSyncStore()
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := store.ID()
			if err != nil {
				fmt.Println("Status: Not connected")
				fmt.Println("Run 'scraper sync keys' to check your SSH keys")
				return nil
			}

			fmt.Println("Status: Connected")
			fmt.Printf("User ID: %s\n", id)
			fmt.Printf("Host: %s\n", cfg.CharmHost)
			if count, err := store.CountArticles(); err == nil {
				fmt.Printf("Articles: %d\n", count)
			}

			return nil
		},
	}
}

func newSyncNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Force immediate sync with Charm cloud",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openSyncStore()
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Println("Syncing...")
			if err := store.Sync(); err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}

			fmt.Println("Sync complete")
			return nil
		},
	}
}

func newSyncWipeCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Wipe all local data (nuclear option)",
		Long: `Completely wipe all local Charm data.

WARNING: This deletes all locally cached articles. Your cloud data
remains intact and will be re-synced on next access.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				fmt.Println("This will wipe ALL local data!")
				fmt.Println("Run with --confirm to proceed")
				return nil
			}

			store, _, err := openSyncStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Reset(); err != nil {
				return fmt.Errorf("failed to wipe data: %w", err)
			}

			fmt.Println("Local data wiped successfully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm the wipe operation")

	return cmd
}

func newSyncKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List authorized SSH keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openSyncStore()
			if err != nil {
				return err
			}
			defer store.Close()

			keys, err := store.AuthorizedKeys()
			if err != nil {
				return fmt.Errorf("failed to get authorized keys: %w", err)
			}

			if keys == "" {
				fmt.Println("No authorized keys found")
				return nil
			}

			fmt.Println("Authorized SSH keys:")
			fmt.Println(keys)

			return nil
		},
	}
}

func newSyncUnlinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlink <key>",
		Short: "Remove an authorized SSH key from the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openSyncStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.UnlinkKey(args[0]); err != nil {
				return fmt.Errorf("failed to unlink key: %w", err)
			}

			fmt.Println("Key unlinked")
			return nil
		},
	}
}
