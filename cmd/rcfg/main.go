// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Command rcfg prints the resolved configuration of an application.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
