// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rcfg

import "golang.org/x/sync/errgroup"

// runner executes n independent operations, each writing only its own result slot.
// It returns the first error, if any, after all started operations have completed.
type runner interface {
	each(n int, fn func(i int) error) error
}

// sequential runs operations one by one in order on the calling goroutine,
// and stops at the first error.
type sequential struct{}

func (sequential) each(n int, fn func(int) error) error {
	for i := range n {
		if err := fn(i); err != nil {
			return err
		}
	}

	return nil
}

// concurrent runs every operation on its own goroutine.
// It returns the error of the operation with the lowest index,
// which is the same error sequential returns.
type concurrent struct{}

func (concurrent) each(n int, fn func(int) error) error {
	errs := make([]error, n)
	var group errgroup.Group
	for i := range n {
		group.Go(func() error {
			errs[i] = fn(i)

			return nil
		})
	}
	_ = group.Wait() // Errors are collected in errs.

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
