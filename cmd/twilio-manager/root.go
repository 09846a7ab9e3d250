package main

import (
	"fmt"

	"github.com/spf13/cobra"

	twiliomanager "github.com/jmhjr316-Git/twilio-manager"
	"github.com/jmhjr316-Git/twilio-manager/internal/directory"
)

var (
	flagAccount  string
	flagInsecure bool
)

var rootCmd = &cobra.Command{
	Use:           "twilio-manager",
	Short:         "Inspect call and message activity on a Twilio account",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagAccount, "account", "a", "", "named account from the account file (default: TWILIO_* env)")
	rootCmd.PersistentFlags().BoolVar(&flagInsecure, "insecure", false, "skip TLS certificate verification")
}

// openFileStore opens the account file at its default location.
func openFileStore() (*directory.FileStore, error) {
	path, err := directory.DefaultPath()
	if err != nil {
		return nil, err
	}
	return directory.OpenFileStore(path)
}

// resolveCredential finds the credential to use: the named file-store
// account when --account is given, the environment otherwise.
func resolveCredential() (twiliomanager.Credential, error) {
	if flagAccount != "" {
		store, err := openFileStore()
		if err != nil {
			return twiliomanager.Credential{}, err
		}
		cred, ok := store.Get(flagAccount)
		if !ok {
			return twiliomanager.Credential{}, fmt.Errorf("account %q not found; see 'twilio-manager accounts list'", flagAccount)
		}
		return cred, nil
	}

	store, err := directory.NewEnvStore()
	if err != nil {
		return twiliomanager.Credential{}, err
	}
	cred, ok := store.Get("")
	if !ok {
		return twiliomanager.Credential{}, fmt.Errorf("no credential: set TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN or use --account")
	}
	return cred, nil
}

func newClient() (*twiliomanager.Client, error) {
	cred, err := resolveCredential()
	if err != nil {
		return nil, err
	}
	return twiliomanager.New(cred.AccountSID, cred.AuthToken,
		twiliomanager.WithInsecureTLS(flagInsecure),
	)
}
