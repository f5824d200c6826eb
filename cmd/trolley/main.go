// Package main provides the trolley CLI: a single-user shopping cart over a
// durable product catalog and cart-state store.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// userError marks expected business-rule failures (unknown product,
// insufficient stock, item not in cart) so main can exit with
// exitUserError instead of exitSysError.
type userError struct {
	msg string
}

func (e userError) Error() string {
	return e.msg
}

// userErrorf builds a userError from a format string.
func userErrorf(format string, args ...any) error {
	return userError{msg: fmt.Sprintf(format, args...)}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ue userError
		if errors.As(err, &ue) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
}
