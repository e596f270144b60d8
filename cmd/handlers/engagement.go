package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tubelens/internal/config"
	"tubelens/internal/logger"
	"tubelens/internal/store"
)

// NewEngagementCmd creates the engagement store management command.
func NewEngagementCmd() *cobra.Command {
	engagementCmd := &cobra.Command{
		Use:   "engagement",
		Short: "Manage the engagement store",
		Long:  `Inspect and manage the SQLite store that holds per-channel engagement data.`,
	}

	engagementCmd.AddCommand(newEngagementStatsCmd())
	engagementCmd.AddCommand(newEngagementShowCmd())
	engagementCmd.AddCommand(newEngagementClearCmd())

	return engagementCmd
}

func newEngagementStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show engagement store statistics",
		Long:  `Display the number of stored engagement entries and distinct channels.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runEngagementStats(); err != nil {
				logger.Error("Failed to get engagement stats", err)
				os.Exit(1)
			}
		},
	}
}

func newEngagementShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <channel-id>",
		Short: "Show stored engagement data for a channel",
		Long:  `Print every stored engagement entry for the given channel as JSON.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runEngagementShow(args[0]); err != nil {
				logger.Error("Failed to show engagement data", err)
				os.Exit(1)
			}
		},
	}
}

func newEngagementClearCmd() *cobra.Command {
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the engagement store (removes all stored entries)",
		Long:  `Remove all engagement entries from the SQLite database.`,
		Run: func(cmd *cobra.Command, args []string) {
			confirm, _ := cmd.Flags().GetBool("confirm")
			if err := runEngagementClear(confirm); err != nil {
				logger.Error("Failed to clear engagement store", err)
				os.Exit(1)
			}
		},
	}

	clearCmd.Flags().Bool("confirm", false, "Skip confirmation prompt")
	return clearCmd
}

func runEngagementStats() error {
	fmt.Println("📊 Engagement Store Statistics")
	fmt.Println("==============================")

	st, err := openConfiguredStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	stats, err := st.GetStats()
	if err != nil {
		return fmt.Errorf("failed to get engagement statistics: %w", err)
	}

	fmt.Printf("📄 Entries stored: %d\n", stats.Entries)
	fmt.Printf("📺 Channels tracked: %d\n", stats.Channels)
	fmt.Printf("💾 Database: %s\n", st.Path())

	return nil
}

func runEngagementShow(channelID string) error {
	st, err := openConfiguredStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	entries, err := st.GetAll(channelID)
	if err != nil {
		return fmt.Errorf("failed to read engagement data: %w", err)
	}
	if len(entries) == 0 {
		fmt.Printf("No engagement data stored for channel %s\n", channelID)
		return nil
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode engagement data: %w", err)
	}
	fmt.Println(string(out))

	return nil
}

func runEngagementClear(confirm bool) error {
	if !confirm {
		fmt.Print("⚠️  This will remove all stored engagement data. Continue? [y/N]: ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" && response != "yes" {
			fmt.Println("Clear cancelled")
			return nil
		}
	}

	fmt.Println("🗑️  Clearing engagement store...")

	st, err := openConfiguredStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := st.Clear(); err != nil {
		return fmt.Errorf("failed to clear engagement store: %w", err)
	}

	fmt.Println("✅ Engagement store cleared successfully")
	return nil
}

func openConfiguredStore() (*store.Store, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	st, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open engagement store: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		logger.Error("Failed to close engagement store", err)
	}
}
