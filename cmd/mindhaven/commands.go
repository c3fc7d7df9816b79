package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindhaven/mindhaven/internal/analytics"
	"github.com/mindhaven/mindhaven/internal/storage"
)

// --- entry ---

var entryCmd = &cobra.Command{
	Use:   "entry <text>",
	Short: "Write a journal entry",
	Long: `Write a journal entry and have it analyzed.

Examples:
  mindhaven entry "Had a great walk in the park today" --mood 8
  mindhaven entry "Feeling a bit anxious about tomorrow" --mood 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mood, _ := cmd.Flags().GetInt("mood")
		content := strings.Join(args, " ")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		req := map[string]any{"content": content, "mood": mood}
		resp, err := client.post(cmd.Context(), "/api/entries", req)
		if err != nil {
			return err
		}

		var entry storage.Entry
		if err := decodeJSON(resp, &entry); err != nil {
			return err
		}

		printSuccess("Entry saved (%s)", entry.ID[:8])
		printStatus("Sentiment", "%s", entry.Sentiment)
		if len(entry.Emotions) > 0 {
			printStatus("Emotions", "%s", strings.Join(entry.Emotions, ", "))
		}
		if entry.Analysis != nil {
			printStatus("Mood score", "%.0f/10", entry.Analysis.MoodScore)
			if entry.Analysis.Insights != "" {
				fmt.Printf("\n%s\n", entry.Analysis.Insights)
			}
		}
		return nil
	},
}

// --- entries ---

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List recent journal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), fmt.Sprintf("/api/entries?limit=%d", limit))
		if err != nil {
			return err
		}

		var entries []storage.Entry
		if err := decodeJSON(resp, &entries); err != nil {
			return err
		}

		if len(entries) == 0 {
			printWarning("No entries yet. Write one with: mindhaven entry \"...\"")
			return nil
		}

		for _, e := range entries {
			header := fmt.Sprintf("%s  mood %d/10  %s",
				e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Mood, e.Sentiment)
			fmt.Printf("%s\n", colorize(colorBold, header))
			fmt.Printf("  %s\n\n", truncateLine(e.Content, 120))
		}
		return nil
	},
}

// --- chat ---

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Talk to the wellness companion",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(cmd.Context(), "/api/chat", map[string]any{"message": message})
		if err != nil {
			return err
		}

		var result struct {
			Reply  storage.ChatMessage `json:"reply"`
			IsDemo bool                `json:"isDemo"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		fmt.Println(result.Reply.Content)
		if result.IsDemo {
			printWarning("Demo mode: set OPENAI_API_KEY for full AI responses")
		}
		return nil
	},
}

// --- stats ---

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journaling statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), "/api/analytics/stats")
		if err != nil {
			return err
		}

		var summary analytics.Summary
		if err := decodeJSON(resp, &summary); err != nil {
			return err
		}

		printStatus("Entries", "%d", summary.TotalEntries)
		printStatus("Positive entries", "%d", summary.PositiveEntries)
		printStatus("Average mood", "%.1f/10", summary.AverageMood)
		if summary.AverageAIMood > 0 {
			printStatus("Average AI mood", "%.1f/10", summary.AverageAIMood)
		}
		printStatus("Streak", "%d day(s)", summary.StreakDays)
		switch {
		case summary.MoodTrend > 0:
			printStatus("Trend", "improving (%+.1f)", summary.MoodTrend)
		case summary.MoodTrend < 0:
			printStatus("Trend", "declining (%+.1f)", summary.MoodTrend)
		default:
			printStatus("Trend", "steady")
		}
		return nil
	},
}

// --- insights ---

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show wellness insights derived from your entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), "/api/analytics/insights")
		if err != nil {
			return err
		}

		var insights []analytics.Insight
		if err := decodeJSON(resp, &insights); err != nil {
			return err
		}

		if len(insights) == 0 {
			printWarning("Not enough entries yet for insights")
			return nil
		}

		for _, ins := range insights {
			color := colorCyan
			switch ins.Kind {
			case analytics.InsightWarning:
				color = colorYellow
			case analytics.InsightPositive:
				color = colorGreen
			}
			fmt.Printf("%s\n  %s\n\n", colorize(color, ins.Title), ins.Description)
		}
		return nil
	},
}

// --- quote ---

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a motivational quote",
	RunE: func(cmd *cobra.Command, args []string) error {
		random, _ := cmd.Flags().GetBool("random")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		path := "/api/quote"
		if random {
			path += "?random=1"
		}
		resp, err := client.get(cmd.Context(), path)
		if err != nil {
			return err
		}

		var result map[string]string
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		fmt.Println(result["quote"])
		return nil
	},
}

// --- clear ---

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all journal data",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm {
			printWarning("This will delete ALL entries and chat history. Use --confirm to proceed.")
			return nil
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.delete(cmd.Context(), "/api/entries")
		if err != nil {
			return err
		}

		var result map[string]string
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("All data cleared")
		return nil
	},
}

// --- profile ---

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile and settings as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), "/api/profile")
		if err != nil {
			return err
		}
		var prof any
		if err := decodeJSON(resp, &prof); err != nil {
			return err
		}

		resp, err = client.get(cmd.Context(), "/api/settings")
		if err != nil {
			return err
		}
		var settings any
		if err := decodeJSON(resp, &settings); err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"profile": prof, "settings": settings})
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set <name|email> <value>",
	Short: "Set a profile field",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if key != "name" && key != "email" {
			return fmt.Errorf("unknown field %q (want name or email)", key)
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.patch(cmd.Context(), "/api/profile", map[string]string{key: value})
		if err != nil {
			return err
		}
		var result map[string]string
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

func truncateLine(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	profileCmd.AddCommand(profileShowCmd, profileSetCmd)

	entryCmd.Flags().Int("mood", 5, "self-rated mood from 1 to 10")
	entriesCmd.Flags().Int("limit", 10, "maximum number of entries to show")
	quoteCmd.Flags().Bool("random", false, "pick a random quote instead of today's")
	clearCmd.Flags().Bool("confirm", false, "confirm deletion of all data")
}
