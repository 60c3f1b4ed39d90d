// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keisan evaluates calculator expressions with
// arbitrary-precision arithmetic. A source string and a requested
// precision in bits go in; a decimal string, or an error describing
// the failure, comes out. The numeric kernel lives in the value
// package; scan and parse provide the little expression language.
package keisan // import "keisan.io/keisan"

import (
	"errors"
	"strings"

	"keisan.io/keisan/config"
	"keisan.io/keisan/parse"
	"keisan.io/keisan/scan"
	"keisan.io/keisan/value"
)

// Eval tokenizes, parses, and evaluates the expression in src at the
// precision configured in conf, and renders the result in the
// configured output base. Failures in the kernel surface as errors:
// named ones as their message, unexpected panics as a generic
// arithmetic error.
func Eval(conf *config.Config, src string) (result string, err error) {
	value.SetConfig(conf)
	defer func() {
		if r := recover(); r != nil {
			result = ""
			if e, ok := r.(value.Error); ok {
				err = e
				return
			}
			err = errors.New("arithmetic error")
		}
	}()
	prec := conf.Precision()
	scanner := scan.New(conf, "<input>", strings.NewReader(src))
	p := parse.NewParser(conf, "<input>", scanner)
	expr := p.Parse()
	f := expr.Eval(prec).Eval(prec)
	f.Round(prec)
	return f.String(), nil
}
