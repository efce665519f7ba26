package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "satdata",
		Short: "satdata",
		Long:  `A CLI tool to prepare, inspect and encode SAT instance corpora.`,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
			cmd.Flags().Visit(func(flag *pflag.Flag) {
				log.Debugf("flag %s=%s", flag.Name, flag.Value)
			})
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newVocabCmd())
	rootCmd.AddCommand(newDataCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
