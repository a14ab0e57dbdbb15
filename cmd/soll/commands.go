package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tychoish/soll/internal/mlog"
	"github.com/tychoish/soll/internal/replay"
)

type replayFlags struct {
	c      string
	format string
	check  bool
}

func newRootCmd() *cobra.Command {
	lc := new(mlog.LogConfig)
	rootCmd := &cobra.Command{
		Use:   "soll",
		Short: "Replay and inspect operations on a self-organizing list.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lg, err := mlog.NewLogger(lc)
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			mlog.SetLogger(lg)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pfs := rootCmd.PersistentFlags()
	pfs.StringVar(&lc.Level, "log-level", "warn", "log level (debug, info, warn, error)")
	pfs.BoolVar(&lc.Production, "log-production", false, "log json with sampling")

	rootCmd.AddCommand(newReplayCmd(), newDemoCmd())
	return rootCmd
}

func newReplayCmd() *cobra.Command {
	rf := new(replayFlags)
	cmd := &cobra.Command{
		Use:   "replay -c scenario_file",
		Short: "Replay a scenario file and print the report.",
		RunE: func(cmd *cobra.Command, args []string) error {
			mlog.L().Info("loading scenario", zap.String("file", rf.c))
			sc, err := replay.Load(rf.c)
			if err != nil {
				return err
			}
			return runScenario(cmd, sc, rf)
		},
		DisableFlagsInUseLine: true,
	}
	fs := cmd.Flags()
	fs.StringVarP(&rf.c, "config", "c", "", "scenario file")
	fs.StringVarP(&rf.format, "format", "f", replay.FormatText, "report format (text, yaml)")
	fs.BoolVar(&rf.check, "check", false, "validate the list structure after every step")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newDemoCmd() *cobra.Command {
	rf := &replayFlags{check: true}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay the built-in demonstration scenario.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, replay.Demo(), rf)
		},
	}
	cmd.Flags().StringVarP(&rf.format, "format", "f", replay.FormatText, "report format (text, yaml)")
	return cmd
}

func runScenario(cmd *cobra.Command, sc *replay.Scenario, rf *replayFlags) error {
	report, err := replay.Run(sc, replay.Options{Check: rf.check, Logger: mlog.L()})
	if err != nil {
		return fmt.Errorf("replay failed, %w", err)
	}
	return report.Write(cmd.OutOrStdout(), rf.format)
}
