package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/symex"
	"github.com/npillmayer/symex/runtime"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the sample expressions",
	Long: `Builds the sample expressions expr3 to expr6 and their sum, then prints
their text form and the value of expr3.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportError(runDemo(cmd.OutOrStdout()))
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// runDemo prints the samples of package runtime. Values are printed with six
// significant digits.
func runDemo(w io.Writer) error {
	exprs := make(map[string]*symex.Expr)
	for _, s := range runtime.Samples() {
		exprs[s.Name] = s.Expr
	}
	v, err := symex.Evaluate(exprs["expr3"])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "expr3 = %s expr3.eval() = %s\n", exprs["expr3"], strconv.FormatFloat(v, 'g', 6, 64))
	for _, name := range []string{"expr4", "expr5", "expr6"} {
		fmt.Fprintf(w, "%s = %s\n", name, exprs[name])
	}
	fmt.Fprintf(w, "expr3 + expr4 + expr5 + expr6 = %s\n", exprs["sum"])
	return nil
}
