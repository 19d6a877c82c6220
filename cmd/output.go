package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsphweid/theorydex/note"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var format string

// output writes v in the selected format. text is used as is for the
// plain format.
func output(cmd *cobra.Command, v interface{}, text string) error {
	w := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		_, err := fmt.Fprintln(w, text)
		return err
	}
	return fmt.Errorf("unknown format %q, want text, json or yaml", format)
}

func notesText(name string, notes []note.Note) string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.String()
	}
	return name + ": " + strings.Join(names, " ")
}

func names[T fmt.Stringer](values []T) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = v.String()
	}
	return res
}
