package main

import (
	"fmt"

	"github.com/spf13/cobra"

	twiliomanager "github.com/jmhjr316-Git/twilio-manager"
	"github.com/jmhjr316-Git/twilio-manager/internal/types"
)

var (
	flagSID   string
	flagToken string
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage the named accounts in the local account file",
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored account names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openFileStore()
		if err != nil {
			return err
		}
		for _, name := range store.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var accountsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Store an account credential under a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cred := twiliomanager.Credential{AccountSID: flagSID, AuthToken: flagToken}
		if err := types.ValidateCredential(cred); err != nil {
			return err
		}
		store, err := openFileStore()
		if err != nil {
			return err
		}
		if err := store.Add(args[0], cred); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "account %q saved\n", args[0])
		return nil
	},
}

var accountsRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a stored account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openFileStore()
		if err != nil {
			return err
		}
		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "account %q removed\n", args[0])
		return nil
	},
}

func init() {
	accountsAddCmd.Flags().StringVar(&flagSID, "sid", "", "account SID (AC...)")
	accountsAddCmd.Flags().StringVar(&flagToken, "token", "", "auth token")
	_ = accountsAddCmd.MarkFlagRequired("sid")
	_ = accountsAddCmd.MarkFlagRequired("token")

	accountsCmd.AddCommand(accountsListCmd, accountsAddCmd, accountsRmCmd)
	rootCmd.AddCommand(accountsCmd)
}
