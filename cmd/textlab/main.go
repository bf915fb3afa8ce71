package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"textlab/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			if label := services.Label(err); label != "" {
				fmt.Fprintf(os.Stderr, "textlab: %s: %v\n", label, err)
			} else {
				fmt.Fprintf(os.Stderr, "textlab: %v\n", err)
			}
		}
		os.Exit(1)
	}
}
