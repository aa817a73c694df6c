package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mm",
		Short:         "Memory Match (mm): a card matching game for the terminal",
		Long:          "mm deals sixteen face-down cards holding eight pairs. Reveal two at a time, match them all, and beat your best move count and time.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlayCmd(app),
		newSimulateCmd(app),
		newBestCmd(app),
	)

	return rootCmd
}
