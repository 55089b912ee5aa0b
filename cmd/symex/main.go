/*
Command symex is a driver for the symbolic expression engine.

	symex demo                    # print the sample expressions
	symex show trees.yaml --wrt x # print, evaluate and differentiate trees of a file
	symex repl --init cmds.txt    # interactive mode

Trees are read from JSON or YAML documents, see package codec.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/symex"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'symex.repl'.
func tracer() tracing.Trace {
	return tracing.Select("symex.repl")
}

// traceKeys are the tracers of all packages of this module.
var traceKeys = []string{"symex", "symex.walk", "symex.ad", "symex.codec", "symex.runtime", "symex.repl"}

var rootCmd = &cobra.Command{
	Use:   "symex",
	Short: "symex builds, evaluates and differentiates expression trees",
	Long: `symex is a driver for a small symbolic expression engine. Expressions are
trees of literals, variables and the operations neg, exp, log, sin, cos,
add, sub, mul and div.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("trace")
		initTracing(level)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("trace", "Error", "Trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().Bool("legacy-exp", false, "Use the legacy rule d/dx exp(u) = exp(u) + u'")
	rootCmd.PersistentFlags().Bool("strict", false, "Do not differentiate binary operations")
}

func main() {
	initDisplay()
	Execute()
}

// initTracing routes all tracers to the Go logger.
func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	gtrace.SyntaxTracer.SetTraceLevel(traceLevel(level))
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(traceLevel(level))
	}
	tracer().Infof("Trace level is %s", level)
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// reportError prints an error and passes it on.
func reportError(err error) error {
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return err
}

// diffOptions collects differentiation options from the persistent flags.
func diffOptions(cmd *cobra.Command) []symex.DiffOption {
	var opts []symex.DiffOption
	if legacy, _ := cmd.Flags().GetBool("legacy-exp"); legacy {
		opts = append(opts, symex.LegacyExpRule())
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		opts = append(opts, symex.WithoutBinaryRules())
	}
	return opts
}
