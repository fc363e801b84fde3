/*
Copyright © 2024 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command lptrace parses linear programs in the text format and renders
// simplex traces returned by a solver.
//
//	lptrace parse [-min] [-integer] [-v] FILE     print the program as a solver request
//	lptrace preview [-min] [-v] FILE              print the program as LaTeX
//	lptrace render [-latex] [-v] FILE             render a solver response
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/costela/lptrace"
	"github.com/costela/lptrace/latex"
	"github.com/costela/lptrace/tableau"
)

const usage = `usage: lptrace parse [-min] [-integer] [-v] FILE
       lptrace preview [-min] [-v] FILE
       lptrace render [-latex] [-v] FILE`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fatalf("lptrace: %v", err)
	}
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		return errors.New(usage)
	}

	switch args[0] {
	case "parse":
		return runParse(args[1:], stdout, stderr, false)
	case "preview":
		return runParse(args[1:], stdout, stderr, true)
	case "render":
		return runRender(args[1:], stdout, stderr)
	default:
		return errors.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func runParse(args []string, stdout, stderr io.Writer, preview bool) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	minimize := fs.Bool("min", false, "Minimize the objective instead of maximizing it.")
	integer := fs.Bool("integer", false, "Restrict variables to integers.")
	verbose := fs.Bool("v", false, "Log parsing details to stderr.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New(usage)
	}

	opts := []lptrace.Option{lptrace.WithInteger(*integer)}
	if *minimize {
		opts = append(opts, lptrace.WithDirection(lptrace.Minimize))
	}
	if *verbose {
		opts = append(opts, lptrace.WithLogger(log.New(stderr, "parse: ", 0)))
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return errors.Wrap(err, "opening program")
	}
	defer f.Close()

	lp, err := lptrace.ParseReader(f, opts...)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", fs.Arg(0))
	}

	if preview {
		out, err := latex.Preview(lp, latex.DefaultSymbols())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	}

	data, err := lptrace.EncodeProgram(lp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}

func runRender(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	useLatex := fs.Bool("latex", false, "Render LaTeX instead of plain text.")
	verbose := fs.Bool("v", false, "Log rendering fallbacks to stderr.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New(usage)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return errors.Wrap(err, "reading response")
	}

	resp, err := lptrace.DecodeResponse(data)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		var te *lptrace.TransportError
		if errors.As(err, &te) && te.ServerSide() {
			return errors.Wrap(err, "solver failure")
		}
		return errors.Wrap(err, "program rejected")
	}

	var opts []tableau.Option
	if *useLatex {
		opts = append(opts, tableau.WithFormatter(latex.NewFormatter()))
	}
	if *verbose {
		opts = append(opts, tableau.WithLogger(log.New(stderr, "render: ", 0)))
	}

	r, err := tableau.NewRenderer(opts...)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(stdout, r.SummarizeFeasibility(resp)); err != nil {
		return err
	}
	for _, step := range r.Render(resp) {
		if _, err := fmt.Fprintf(stdout, "\n%s\n", step); err != nil {
			return err
		}
	}

	return nil
}
