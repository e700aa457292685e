// SPDX-License-Identifier: Apache-2.0
package main

import (
	goerrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"orn/grammar"
	"orn/internal/codegen"
	"orn/internal/compile"
	"orn/internal/errors"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:           "orn-syntaxgen",
		Short:         "Compile Orn grammar files and generate the typed syntax facade",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbosity := 0
			if verbose {
				verbosity = 1
			}
			commonlog.Configure(verbosity, nil)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(checkCmd(), emitCmd(), dumpCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <grammar-file>",
		Short: "Parse and compile a grammar, reporting every defect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(args[0])
			if err != nil {
				return err
			}
			color.Green("%s: %d definitions, no defects", args[0], len(model.Defs))
			return nil
		},
	}
}

func emitCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "emit <grammar-file>",
		Short: "Generate the kind enumeration and facade source from a grammar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(args[0])
			if err != nil {
				return err
			}
			files, err := codegen.Generate(model, codegen.DefaultOptions())
			if err != nil {
				return err
			}
			for _, f := range files {
				path := filepath.Join(outDir, f.Name)
				if err := os.WriteFile(path, f.Source, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				fmt.Println(path)
			}
			color.Green("%s: emitted %d files", args[0], len(files))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for the generated files")
	return cmd
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <grammar-file>",
		Short: "Print the compiled shape of every definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(args[0])
			if err != nil {
				return err
			}
			for _, def := range model.Defs {
				if def.Kind == compile.SumDef {
					fmt.Printf("%s (group)\n", def.Name)
					for _, m := range def.Members {
						fmt.Printf("  | %s\n", m)
					}
					continue
				}
				fmt.Printf("%s\n", def.Name)
				for _, f := range def.Fields {
					fmt.Printf("  %-24s %-8s %s\n", f.Name, f.Card, f.Target)
				}
			}
			return nil
		},
	}
}

// loadModel parses and compiles one grammar file, printing any diagnostics
// in full before failing.
func loadModel(path string) (*compile.Model, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grammar file: %w", err)
	}

	g, err := grammar.Parse(path, string(source))
	if err != nil {
		reporter := errors.NewErrorReporter(path, string(source))
		var parseErr *grammar.ParseError
		if goerrors.As(err, &parseErr) {
			fmt.Print(reporter.FormatError(errors.GrammarError{
				Level:    errors.Error,
				Code:     errors.ErrorMalformedGrammar,
				Message:  parseErr.Message,
				Position: parseErr.Position,
				Length:   1,
			}))
			return nil, fmt.Errorf("%s does not parse", path)
		}
		return nil, err
	}

	model, errs := compile.Compile(g)
	if len(errs) > 0 {
		reporter := errors.NewErrorReporter(path, string(source))
		for _, e := range errs {
			fmt.Print(reporter.FormatError(e))
		}
		return nil, fmt.Errorf("%s: %d grammar defects", path, len(errs))
	}
	return model, nil
}
