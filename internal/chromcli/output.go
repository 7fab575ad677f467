package chromcli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cwbudde/algo-chrom/chrom/pipeline"
)

// WriteJSON writes res as indented JSON.
func WriteJSON(w io.Writer, res pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// createOutput returns path opened for writing, or stdout for an empty path
// or "-". The returned close function is always non-nil.
func createOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
