package assets

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
)

// Load decodes an embedded JSON asset. Unknown keys are rejected so a typo
// in an asset file fails at startup instead of silently using a zero value.
func Load[T any](name string) (T, error) {
	return decode[T](dataFS, name)
}

func decode[T any](fsys fs.FS, name string) (T, error) {
	var result T

	f, err := fsys.Open(name)
	if err != nil {
		return result, fmt.Errorf("opening asset %s: %w", name, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("decoding asset %s: %w", name, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return result, fmt.Errorf("decoding asset %s: trailing data after the JSON value", name)
	}

	return result, nil
}
