package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/AllesOderNicht/door-web/internal/locale"
)

// Report output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed, color.Bold).SprintFunc()
	warnMark = color.New(color.FgYellow).SprintFunc()
)

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// outputKeys prints a list of key paths in text or JSON format.
func outputKeys(w io.Writer, keys []locale.KeyPath, format, label string) error {
	if format == formatJSON {
		if keys == nil {
			keys = []locale.KeyPath{}
		}
		return outputJSON(w, keys)
	}

	if len(keys) == 0 {
		fmt.Fprintf(w, "No %s found.\n", label)
		return nil
	}

	fmt.Fprintf(w, "Found %d %s:\n", len(keys), label)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s\n", k)
	}
	return nil
}

// statusLine prints a labelled count with an OK or FAIL marker and
// reports whether the count was zero.
func statusLine(w io.Writer, label string, count int) bool {
	status := okMark("OK")
	if count > 0 {
		status = failMark("FAIL")
	}
	fmt.Fprintf(w, "  %-30s %3d  %s\n", label+":", count, status)
	return count == 0
}
