// Package main provides the weapon content import tool. It converts designer
// exports into the curated YAML template format the forge loads at startup.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ironvale/forge/internal/importer"
)

func main() {
	format := flag.String("format", "csv", "source format: csv")
	source := flag.String("source", "", "path to source weapon sheet")
	output := flag.String("output", "", "path to output template directory")
	flag.Parse()

	if *source == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "usage: import-content [-format csv] -source <file> -output <dir>")
		os.Exit(1)
	}

	var src importer.Source
	switch *format {
	case "csv":
		src = importer.NewCSVSource()
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (supported: csv)\n", *format)
		os.Exit(1)
	}

	start := time.Now()
	imp := importer.New(src)
	if err := imp.Run(*source, *output); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("import complete in %s\n", time.Since(start).Round(time.Millisecond))
}
