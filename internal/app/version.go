package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, set at build time with
// -ldflags "-X github.com/agbru/binhist/internal/app.Version=...".
var Version = "dev"

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "binhist %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
