package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/segmentio/encoding/json"
)

// ParsePayload decodes an API response: a JSON array of models with parallel x/y arrays.
func ParsePayload(r io.Reader) ([]RawModel, error) {
	var models []RawModel
	if err := json.NewDecoder(r).Decode(&models); err != nil {
		return nil, fmt.Errorf("failed to decode API payload: %w", err)
	}
	for i, m := range models {
		if m.Model == "" {
			return nil, fmt.Errorf("payload entry %d has no model name", i)
		}
	}
	return models, nil
}

// ParsePayloadBytes is ParsePayload for an in-memory response.
func ParsePayloadBytes(data []byte) ([]RawModel, error) {
	return ParsePayload(bytes.NewReader(data))
}

// ParsePayloadFile reads and decodes a payload stored at path.
func ParsePayloadFile(path string) ([]RawModel, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open payload file: %w", err)
	}
	defer file.Close()

	return ParsePayload(file)
}
