package main

import (
	"context"
	"fmt"
	"os"

	"taskboard/internal/cli"
	"taskboard/internal/logging"
)

func main() {
	// Pick how the store is opened based on TASKBOARD_ENV
	opener := NewStoreFactory(GetEnvironment()).Opener()

	root := cli.NewRootCommand(opener, os.Stdout, os.Stderr)
	if err := root.Execute(context.Background(), os.Args[1:]); err != nil {
		errorHandler := cli.NewErrorHandler()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Debugf("error code: %s\n", errorHandler.GetErrorCode(err))
		os.Exit(errorHandler.ExitCode(err))
	}
}
