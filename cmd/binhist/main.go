package main

import (
	"context"
	"os"

	"github.com/agbru/binhist/internal/app"
	apperrors "github.com/agbru/binhist/internal/errors"
)

func main() {
	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitCodeFor(err))
	}

	exitCode := application.Run(context.Background(), os.Stdin, os.Stdout)
	os.Exit(exitCode)
}
