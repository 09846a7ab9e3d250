package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var numbersCmd = &cobra.Command{
	Use:   "numbers",
	Short: "List every phone number on the account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		numbers, err := client.IncomingNumbers(cmd.Context())
		if err != nil {
			return err
		}
		for _, n := range numbers {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", n.PhoneNumber, n.FriendlyName, n.SID)
		}
		return nil
	},
}

var numberConfigCmd = &cobra.Command{
	Use:   "config <number-sid>",
	Short: "Show the configuration of one incoming number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		doc, err := client.NumberConfig(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(doc))
		for k := range doc {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if doc[k] == nil {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", k, doc[k])
		}
		return nil
	},
}

func init() {
	numbersCmd.AddCommand(numberConfigCmd)
	rootCmd.AddCommand(numbersCmd)
}
