package main

import (
	"fmt"
	"strings"

	"github.com/danmuck/bitsctl/internal/config"
	"github.com/danmuck/bitsctl/internal/logging"
	"github.com/danmuck/bitsctl/internal/packet"
	"github.com/danmuck/bitsctl/internal/puzzle"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// cli holds flag values shared by every subcommand.
type cli struct {
	configPath string
	input      string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "bitsctl",
		Short: "Decode and evaluate BITS transmissions",
		Long: `bitsctl decodes hex-encoded BITS transmissions into packet trees.

Part one reports the sum of every packet version; part two evaluates the
outermost packet.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.loadConfig,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", config.DefaultPath, "path to bitsctl.toml")
	root.PersistentFlags().StringVar(&c.input, "input", "", "puzzle input file (overrides config)")

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Solve both parts from the input file",
			Args:  cobra.NoArgs,
			RunE:  c.runAll,
		},
		&cobra.Command{
			Use:   "part1",
			Short: "Print the version sum of the input transmission",
			Args:  cobra.NoArgs,
			RunE:  c.runPart(puzzle.RunPartOne[packet.Packet, uint64]),
		},
		&cobra.Command{
			Use:   "part2",
			Short: "Print the evaluated value of the input transmission",
			Args:  cobra.NoArgs,
			RunE:  c.runPart(puzzle.RunPartTwo[packet.Packet, uint64]),
		},
		&cobra.Command{
			Use:   "decode <hex>",
			Short: "Print the packet tree, version sum and value of a hex transmission",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runDecode,
		},
		newConfigCmd(c),
	)
	return root
}

func newConfigCmd(c *cli) *cobra.Command {
	var force bool
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bitsctl.toml",
	}
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config template to --config",
		Args:  cobra.NoArgs,
		// The file is being created, so skip loading it.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.WriteTemplate(c.configPath, force); err != nil {
				return err
			}
			log.Info().Str("path", c.configPath).Msg("wrote config template")
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(initCmd)
	return configCmd
}

func (c *cli) loadConfig(cmd *cobra.Command, _ []string) error {
	// Only an explicitly named config file has to exist.
	allowMissing := !cmd.Flags().Changed("config")
	cfg, err := config.Load(c.configPath, allowMissing)
	if err != nil {
		return err
	}
	if in := strings.TrimSpace(c.input); in != "" {
		cfg.Input = in
	}
	logging.SetLevel(cfg.LogLevel)
	c.cfg = cfg
	return nil
}

func (c *cli) day16() puzzle.Day16 {
	return puzzle.Day16{Limits: c.cfg.Limits()}
}

func (c *cli) runAll(cmd *cobra.Command, _ []string) error {
	return puzzle.RunAll[packet.Packet, uint64](cmd.OutOrStdout(), c.cfg.Input, c.day16())
}

type partRunner func(path string, p puzzle.Puzzle[packet.Packet, uint64]) (uint64, error)

func (c *cli) runPart(run partRunner) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		v, err := run(c.cfg.Input, c.day16())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
		return err
	}
}

func (c *cli) runDecode(cmd *cobra.Command, args []string) error {
	p, err := packet.DecodeWithLimits(strings.TrimSpace(args[0]), c.cfg.Limits())
	if err != nil {
		return err
	}
	value, err := packet.Evaluate(p)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, packet.Format(p))
	fmt.Fprintf(out, "version sum: %d\n", packet.VersionSum(p))
	_, err = fmt.Fprintf(out, "value: %d\n", value)
	return err
}
