package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/splitpot/splitpot/internal/domain"
	"github.com/splitpot/splitpot/internal/split"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "splitpot-cli",
		Short: "SplitPot CLI tool",
		Long:  `A command line interface for the SplitPot expense-splitting API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the SplitPot API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// planCmd computes balances and a transfer plan from an exported envelope
// without touching the server.
func planCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute balances and settlements from an exported dataset file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read dataset: %w", err)
			}

			var ds domain.Dataset
			if err := json.Unmarshal(data, &ds); err != nil {
				return fmt.Errorf("parse dataset: %w", err)
			}
			if err := ds.Validate(); err != nil {
				return fmt.Errorf("invalid dataset: %w", err)
			}

			printPlan(&ds)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to an exported dataset envelope")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func printPlan(ds *domain.Dataset) {
	names := make(map[string]string, len(ds.Participants))
	for _, p := range ds.Participants {
		names[p.ID] = p.Name
	}

	balances := split.Balances(ds.Participants, ds.Expenses)

	ids := make([]string, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("Balances (%s):\n", ds.CurrencyCode)
	for _, id := range ids {
		fmt.Printf("  %-20s %s\n", truncate(names[id], 20), money(balances[id]))
	}

	plan := split.Plan(balances)
	if len(plan) == 0 {
		fmt.Println("Everyone is settled up.")
		return
	}

	fmt.Println("Settlements:")
	for _, s := range plan {
		fmt.Printf("  %s -> %s: %s\n", truncate(names[s.FromID], 20), truncate(names[s.ToID], 20), money(s.Amount))
	}
}

// money rounds for display only. The computation itself stays in float64.
func money(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that balances sum to zero",
		Run: func(cmd *cobra.Command, args []string) {
			checkBalances()
		},
	}
}

func checkBalances() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/api/v1/balances/check")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Balance check FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if balanced, ok := result["balanced"].(bool); ok && !balanced {
		fmt.Printf("Balance check FAILED\n")
		printJSON(result)
		os.Exit(1)
	}

	fmt.Printf("Balance check PASSED\n")
	printJSON(result)
}

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the dataset envelope",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: timeout}
			resp, err := client.Get(baseURL + "/api/v1/dataset/export")
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				return fmt.Errorf("export failed (status %d): %s", resp.StatusCode, string(body))
			}

			var dst io.Writer = os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				dst = f
			}

			if _, err := io.Copy(dst, resp.Body); err != nil {
				return fmt.Errorf("write dataset: %w", err)
			}

			if out != "" {
				fmt.Printf("Dataset written to %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write the envelope to a file instead of stdout")

	return cmd
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to marshal: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
