// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"keisan.io/keisan"
	"keisan.io/keisan/config"
	"keisan.io/keisan/run"
)

func main() {
	var (
		prec   int64
		digits int
		base   int
		expr   string
		prompt string
		debugs []string
	)

	rootCmd := &cobra.Command{
		Use:   "keisan [expression]",
		Short: "keisan — an arbitrary-precision calculator",
		Long: `keisan evaluates expressions with arbitrary-precision arithmetic.
With an expression argument or -e it prints the result and exits;
otherwise it reads expressions from standard input, one per line.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var conf config.Config
			conf.SetPrecision(prec)
			conf.SetMaxDigits(digits)
			conf.SetBase(10, base)
			conf.SetPrompt(prompt)
			for _, d := range debugs {
				conf.SetDebug(d, true)
			}

			src := expr
			if src == "" && len(args) > 0 {
				src = strings.Join(args, " ")
			}
			if src != "" {
				result, err := keisan.Eval(&conf, src)
				if err != nil {
					return err
				}
				fmt.Println(result)
				return nil
			}
			if !run.Run(&conf, os.Stdin, os.Stdout, os.Stderr, true) {
				return fmt.Errorf("errors during evaluation")
			}
			return nil
		},
	}

	rootCmd.Flags().Int64VarP(&prec, "prec", "p", config.DefaultPrecision, "precision in bits after the binary point")
	rootCmd.Flags().IntVar(&digits, "digits", config.DefaultMaxDigits, "maximum fractional digits to print")
	rootCmd.Flags().IntVar(&base, "base", 10, "output base (2..36)")
	rootCmd.Flags().StringVarP(&expr, "expr", "e", "", "evaluate a single expression and exit")
	rootCmd.Flags().StringVar(&prompt, "prompt", "", "interactive prompt")
	rootCmd.Flags().StringSliceVar(&debugs, "debug", nil, "debug flags (tokens, parse)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "keisan: %s\n", err)
		os.Exit(1)
	}
}
