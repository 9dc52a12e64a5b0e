// Command stellarnetwork prints stellar network IDs and checks that a
// horizon server is on the configured network.
package main

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stellar/go/support/log"

	"github.com/keybase/stellarnetwork"
)

var (
	configFile string
	verbose    bool

	rootCmd = &cobra.Command{
		Use:           "stellarnetwork",
		Short:         "Stellar network selection tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	idCmd = &cobra.Command{
		Use:   "id <test|public|passphrase>",
		Short: "Print the hex network ID",
		Args:  cobra.ExactArgs(1),
		RunE:  runID,
	}

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Check that horizon runs the configured network",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	checkCmd.Flags().StringVar(&configFile, "config", "network.toml", "path to network config file")
	rootCmd.AddCommand(idCmd, checkCmd)
}

// resolve treats preset names as presets and anything else as a custom
// passphrase.
func resolve(arg string) (stellarnetwork.Network, error) {
	if n, err := stellarnetwork.Named(arg); err == nil {
		return n, nil
	}
	return stellarnetwork.New(arg)
}

func runID(cmd *cobra.Command, args []string) error {
	n, err := resolve(args[0])
	if err != nil {
		return err
	}
	id := n.ID()
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(id[:]))
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	conf, err := stellarnetwork.LoadConfig(configFile)
	if err != nil {
		return err
	}
	if conf.HorizonURL == "" {
		return errors.Errorf("%s: horizon_url not set", configFile)
	}
	reg := stellarnetwork.Default()
	if err := conf.Apply(reg); err != nil {
		return err
	}

	client := &http.Client{Timeout: 30 * time.Second}
	if err := reg.CheckHorizon(client, conf.HorizonURL); err != nil {
		return err
	}
	n, _ := reg.Current()
	log.WithField("horizon", conf.HorizonURL).WithField("network", n.String()).Info("horizon network ok")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithField("err", err).Error("stellarnetwork failed")
		os.Exit(1)
	}
}
