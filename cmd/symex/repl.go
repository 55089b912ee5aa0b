package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Work with expressions interactively",
	Long: `Starts an interactive command line. Expressions are kept in a workspace,
pre-loaded with the samples of 'symex demo'. Type 'help' for a list of commands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		initf, _ := cmd.Flags().GetString("init")
		repl, err := readline.New("symex> ")
		if err != nil {
			return reportError(err)
		}
		defer repl.Close()
		intp := NewIntp(diffOptions(cmd)...)
		pterm.Info.Println("Welcome to symex") // colored welcome message
		tracer().Infof("Quit with <ctrl>D")      // inform user how to stop the CLI
		if err := intp.loadInitFile(initf); err != nil {
			tracer().Errorf("Error while reading init file: %v", err)
		}
		intp.REPL(repl)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().String("init", "", "File of commands to execute on start")
}

// loadInitFile executes the commands of a file, one per line. Errors are
// reported but do not stop execution, except for errors reading the file.
func (intp *Intp) loadInitFile(filename string) error {
	if filename == "" {
		return nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("unable to open init file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		r, err := intp.Exec(line)
		if err != nil {
			pterm.Error.Println(fmt.Sprintf("line %d: %v", lineno, err))
			continue
		}
		r.print()
		if r.quit {
			break
		}
	}
	return scanner.Err()
}

// REPL starts interactive mode.
func (intp *Intp) REPL(repl *readline.Instance) {
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		r, err := intp.Exec(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		r.print()
		if r.quit {
			break
		}
	}
	println("Good bye!")
}
