package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// outputFormat holds the global output format flag value.
var outputFormat string

func validateOutputFormat() error {
	switch outputFormat {
	case "", "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unsupported output format %q, supported formats: text, json, yaml", outputFormat)
}

// isStructuredOutput returns true when the user has requested JSON or YAML.
func isStructuredOutput() bool {
	return outputFormat == "json" || outputFormat == "yaml"
}

// writeStructured encodes data in the requested structured format.
func writeStructured(w io.Writer, data any) error {
	if outputFormat == "yaml" {
		return writeYAML(w, data)
	}
	return writeJSON(w, data)
}

// writeJSON encodes data as indented JSON to the given writer.
func writeJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// writeYAML encodes data as YAML to the given writer.
func writeYAML(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}
