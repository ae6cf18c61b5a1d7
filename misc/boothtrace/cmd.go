package main

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	bitnum "github.com/shabbyrobe/go-bitnum"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// This is a small tool for watching Booth's algorithm work through a
// multiplication one digit at a time. It prints the recoding table, then
// checks the result against the native bridge.

const (
	configF    = "config"
	verbosityF = "verbosity"
	dumpF      = "dump"

	defaultConfig    = ""
	defaultVerbosity = "info"
	defaultDump      = false

	envPrefix = "BOOTHTRACE"

	configFlagUsage    = "The yaml configuration file."
	verbosityFlagUsage = "Verbosity of the logs. Options: debug, info, warn, error."
	dumpFlagUsage      = "Dump every step record after the table."
)

var errDisagree = errs.Class("boothtrace: strategies disagree")

type config struct {
	Verbosity string `mapstructure:"verbosity"`
	Dump      bool   `mapstructure:"dump"`
}

func NewCmd() *cobra.Command {
	var cfgFile string

	traceCmd := &cobra.Command{
		Use:          "boothtrace [flags] <multiplicand> <multiplier>",
		Short:        "Trace Booth's multiplication algorithm step by step.",
		Long:         "Operands are non-negative decimal integers or 0b literals.",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
	}

	traceCmd.Flags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	traceCmd.Flags().String(verbosityF, defaultVerbosity, verbosityFlagUsage)
	traceCmd.Flags().Bool(dumpF, defaultDump, dumpFlagUsage)

	traceCmd.RunE = func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return err
			}
		}

		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		cfg := new(config)
		if err := v.Unmarshal(cfg); err != nil {
			return err
		}

		log, err := newLogger(cfg.Verbosity, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		a, err := parseOperand(args[0])
		if err != nil {
			return err
		}
		b, err := parseOperand(args[1])
		if err != nil {
			return err
		}
		log.Debugw("Parsed operands", "multiplicand", a, "multiplier", b)

		return trace(cmd.OutOrStdout(), log, cfg, a, b)
	}

	return traceCmd
}

// parseOperand accepts a 0b literal, kept exactly as written, or a decimal
// integer of any size.
func parseOperand(s string) (*bitnum.UInt, error) {
	if strings.HasPrefix(s, "0b") {
		return bitnum.UIntFromString(s)
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, bitnum.ErrInvalidArgument.New("operand %q is not a decimal integer or 0b literal", s)
	}
	return bitnum.UIntFromBigInt(b)
}

func trace(out io.Writer, log *zap.SugaredLogger, cfg *config, a, b *bitnum.UInt) error {
	var steps []bitnum.BoothStep
	booth := bitnum.Booth{Trace: func(step bitnum.BoothStep) {
		steps = append(steps, step)
	}}

	bp := bitnum.MulUsing(booth, a, b)
	np := bitnum.MulUsing(bitnum.NativeBridge{}, a, b)
	log.Infow("Multiplied", "steps", len(steps), "booth", bp, "native", np)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s * %s\n\n", a, b)
	fmt.Fprintln(tw, "step\tcur\tprev\taction\tacc\tmultiplier")
	for _, step := range steps {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%b\t%b\n",
			step.Index, step.Current, step.Previous, step.Action, step.Acc, step.Multiplier)
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "booth:\t%s\t(%d)\n", bp, bp)
	fmt.Fprintf(tw, "native:\t%s\t(%d)\n", np, np)

	agree := bp.Equal(np)
	fmt.Fprintf(tw, "agree:\t%v\n", agree)
	if err := tw.Flush(); err != nil {
		return err
	}

	if cfg.Dump {
		spew.Fdump(out, steps)
	}

	if !agree {
		log.Warnw("Native product differs", "booth", bp, "native", np)
		return errDisagree.New("%d * %d: booth %d, native %d", a, b, bp, np)
	}
	return nil
}
