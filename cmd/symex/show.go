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

	"github.com/npillmayer/symex"
	"github.com/npillmayer/symex/codec"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print the expressions of a file",
	Long: `Reads expression trees from a JSON or YAML file and prints, for each of
them, its text form, its value and, with --wrt, its derivative.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wrt, _ := cmd.Flags().GetString("wrt")
		asTree, _ := cmd.Flags().GetBool("tree")
		return reportError(runShow(cmd.OutOrStdout(), args[0], wrt, asTree, diffOptions(cmd)))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().String("wrt", "", "Differentiate with respect to this variable")
	showCmd.Flags().Bool("tree", false, "Display expressions as trees")
}

func runShow(w io.Writer, path, wrt string, asTree bool, opts []symex.DiffOption) error {
	ws, err := codec.ReadFile(path)
	if err != nil {
		return err
	}
	exprs, err := ws.Decode()
	if err != nil {
		return err
	}
	for _, name := range ws.Names() {
		e := exprs[name]
		fmt.Fprintf(w, "%s = %s\n", name, e)
		if v, err := symex.Evaluate(e); err != nil {
			fmt.Fprintf(w, "  value: %v\n", err)
		} else {
			fmt.Fprintf(w, "  value: %s\n", symex.FormatFloat(v))
		}
		if wrt != "" {
			if d, err := symex.Differentiate(e, wrt, opts...); err != nil {
				fmt.Fprintf(w, "  d/d%s: %v\n", wrt, err)
			} else {
				fmt.Fprintf(w, "  d/d%s: %s\n", wrt, d)
			}
		}
		if asTree {
			renderTree(name, leveledList(e))
		}
	}
	return nil
}
