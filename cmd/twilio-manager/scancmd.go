package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	twiliomanager "github.com/jmhjr316-Git/twilio-manager"
)

var flagDays int

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find numbers with no activity in the trailing window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		res, err := client.ScanInactive(cmd.Context(), flagDays, func(p twiliomanager.ScanProgress) {
			log.Info().
				Int("checked", p.Index).
				Int("total", p.Total).
				Str("number", p.Number).
				Msg("scanning")
		})
		if err != nil {
			return err
		}

		for _, s := range res.Inactive {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tcalls=%d\tmessages=%d\n",
				s.PhoneNumber, s.FriendlyName, s.CallCount, s.MessageCount)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "found %d inactive numbers (out of %d total)\n",
			len(res.Inactive), res.Total)
		return nil
	},
}

func init() {
	scanCmd.Flags().IntVar(&flagDays, "days", 30, "length of the trailing window in days")
	rootCmd.AddCommand(scanCmd)
}
