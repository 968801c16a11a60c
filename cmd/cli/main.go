package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gojournal-cli",
		Short: "GoJournal CLI tool",
		Long:  `A command line interface for interacting with the GoJournal API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoJournal API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Journal commands
	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Journal entry operations",
	}

	journalCmd.AddCommand(
		&cobra.Command{
			Use:   "register [file]",
			Short: "Register a journal entry from a JSON file (or stdin with -)",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				registerJournal(args[0])
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List journal entries",
			Run: func(cmd *cobra.Command, args []string) {
				printGet("/api/v1/journals")
			},
		},
		&cobra.Command{
			Use:   "get [id]",
			Short: "Get a journal entry",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				printGet("/api/v1/journals/" + args[0])
			},
		},
		&cobra.Command{
			Use:   "approve [id]",
			Short: "Approve a journal entry",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				printPost("/api/v1/journals/"+args[0]+"/approve", nil)
			},
		},
		&cobra.Command{
			Use:   "history [id]",
			Short: "Show a journal entry's event history",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				printGet("/api/v1/journals/" + args[0] + "/history")
			},
		},
	)
	rootCmd.AddCommand(journalCmd)

	// Account directory
	rootCmd.AddCommand(&cobra.Command{
		Use:   "accounts",
		Short: "List the account directory",
		Run: func(cmd *cobra.Command, args []string) {
			printGet("/api/v1/accounts")
		},
	})

	// Reports
	rootCmd.AddCommand(&cobra.Command{
		Use:   "pl",
		Short: "Show the profit and loss report",
		Run: func(cmd *cobra.Command, args []string) {
			printGet("/api/v1/reports/profit-and-loss")
		},
	})

	// Products
	productsCmd := &cobra.Command{
		Use:   "products",
		Short: "List the product catalog",
		Run: func(cmd *cobra.Command, args []string) {
			printGet("/api/v1/products")
		},
	}
	productsCmd.AddCommand(&cobra.Command{
		Use:   "stocking",
		Short: "Show the catalog stocking state",
		Run: func(cmd *cobra.Command, args []string) {
			printGet("/api/v1/products/stocking")
		},
	})
	productsCmd.AddCommand(&cobra.Command{
		Use:   "suspend <reason>",
		Short: "Suspend catalog stocking",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			body, err := json.Marshal(map[string]string{"reason": args[0]})
			if err != nil {
				fmt.Printf("Error encoding request: %v\n", err)
				os.Exit(1)
			}
			printPost("/api/v1/products/stocking/suspend", body)
		},
	})
	productsCmd.AddCommand(&cobra.Command{
		Use:   "resume",
		Short: "Resume catalog stocking",
		Run: func(cmd *cobra.Command, args []string) {
			printPost("/api/v1/products/stocking/resume", nil)
		},
	})
	rootCmd.AddCommand(productsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func registerJournal(path string) {
	var body []byte
	var err error

	if path == "-" {
		body, err = io.ReadAll(os.Stdin)
	} else {
		body, err = os.ReadFile(path)
	}
	if err != nil {
		fmt.Printf("Error reading request: %v\n", err)
		os.Exit(1)
	}

	printPost("/api/v1/journals", body)
}

func printGet(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printPost(path string, body []byte) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Println(prettyJSON(body))
}

// prettyJSON re-indents a JSON payload; non-JSON bodies pass through.
func prettyJSON(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}
