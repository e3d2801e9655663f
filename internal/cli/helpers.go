package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat}
)

// printStructured writes v as json or yaml. It reports false for the table output.
func printStructured(w io.Writer, output string, v any) (bool, error) {
	switch output {
	case jsonFormat:
		marshalled, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, fmt.Errorf("marshalling output: %w", err)
		}
		fmt.Fprintf(w, "%s\n", string(marshalled))
		return true, nil
	case yamlFormat:
		marshalled, err := yaml.Marshal(v)
		if err != nil {
			return true, fmt.Errorf("marshalling output: %w", err)
		}
		fmt.Fprintf(w, "%s", string(marshalled))
		return true, nil
	default:
		return false, nil
	}
}
