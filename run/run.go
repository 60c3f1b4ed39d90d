// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the read-eval-print loop that drives the
// calculator from a stream of input lines.
package run // import "keisan.io/keisan/run"

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"keisan.io/keisan"
	"keisan.io/keisan/config"
)

// Run reads expressions from in, one per line, evaluates each at the
// configured precision, and prints results to out and errors to
// errOut. It returns when the input is exhausted. The return value
// says whether every line evaluated without error.
func Run(conf *config.Config, in io.Reader, out, errOut io.Writer, interactive bool) (success bool) {
	success = true
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, conf.Prompt())
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result, err := keisan.Eval(conf, line)
		if err != nil {
			fmt.Fprintf(errOut, "keisan: %s\n", err)
			success = false
			continue
		}
		fmt.Fprintln(out, result)
	}
	return success
}
