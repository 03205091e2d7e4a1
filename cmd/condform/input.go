package main

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

// readInput reads the named file, or stdin when name is empty or "-".
func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("condform: read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("condform: read %s: %w", name, err)
	}
	return data, nil
}

func decodeValues(data []byte, source string) (map[string]any, error) {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("condform: decode %s: %w", source, err)
	}
	return values, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("condform: encode output: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
