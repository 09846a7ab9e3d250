package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	twiliomanager "github.com/jmhjr316-Git/twilio-manager"
)

var (
	flagFrom string
	flagTo   string
	flagCSV  string
)

var callsCmd = &cobra.Command{
	Use:   "calls <number>",
	Short: "List calls to and from a number, most recent first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, args[0], twiliomanager.KindCall)
	},
}

var messagesCmd = &cobra.Command{
	Use:   "messages <number>",
	Short: "List messages to and from a number, most recent first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, args[0], twiliomanager.KindMessage)
	},
}

func init() {
	for _, c := range []*cobra.Command{callsCmd, messagesCmd} {
		c.Flags().StringVar(&flagFrom, "from", "", "start date, YYYY-MM-DD (default: 7 days ago)")
		c.Flags().StringVar(&flagTo, "to", "", "end date, YYYY-MM-DD, inclusive (default: today)")
		c.Flags().StringVar(&flagCSV, "csv", "", "write results to a CSV file instead of stdout")
		rootCmd.AddCommand(c)
	}
}

func runLookup(cmd *cobra.Command, rawNumber string, kind twiliomanager.Kind) error {
	number, err := twiliomanager.FormatPhoneNumber(rawNumber)
	if err != nil {
		return err
	}
	window, err := parseWindow()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	var records []twiliomanager.Record
	if kind == twiliomanager.KindCall {
		records, err = client.Calls(cmd.Context(), number, window)
	} else {
		records, err = client.Messages(cmd.Context(), number, window)
	}
	if err != nil {
		return err
	}

	if flagCSV != "" {
		if err := writeCSV(flagCSV, kind, records); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d %ss to %s\n", len(records), kind, flagCSV)
		return nil
	}

	for _, r := range records {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(recordRow(kind, r), "\t"))
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "found %d %ss\n", len(records), kind)
	return nil
}

// parseWindow reads --from/--to, defaulting to the trailing week.
func parseWindow() (twiliomanager.QueryWindow, error) {
	now := time.Now()
	w := twiliomanager.QueryWindow{From: now.AddDate(0, 0, -7), To: now}
	if flagFrom != "" {
		t, err := time.ParseInLocation("2006-01-02", flagFrom, time.Local)
		if err != nil {
			return w, fmt.Errorf("bad --from date: %w", err)
		}
		w.From = t
	}
	if flagTo != "" {
		t, err := time.ParseInLocation("2006-01-02", flagTo, time.Local)
		if err != nil {
			return w, fmt.Errorf("bad --to date: %w", err)
		}
		w.To = t
	}
	return w, nil
}

func recordHeader(kind twiliomanager.Kind) []string {
	if kind == twiliomanager.KindCall {
		return []string{"Direction", "From", "To", "Start Time", "Duration (s)", "Status", "SID"}
	}
	return []string{"Direction", "From", "To", "Date Sent", "Message", "Status", "SID"}
}

func recordRow(kind twiliomanager.Kind, r twiliomanager.Record) []string {
	if kind == twiliomanager.KindCall {
		return []string{string(r.Direction), r.From, r.To, r.When, r.Duration, r.Status, r.SID}
	}
	return []string{string(r.Direction), r.From, r.To, r.When, r.BodyPreview, r.Status, r.SID}
}

func writeCSV(path string, kind twiliomanager.Kind, records []twiliomanager.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(recordHeader(kind)); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.Write(recordRow(kind, r)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
