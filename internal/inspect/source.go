package inspect

import (
	"fmt"
	"io"
	"os"
)

// StdinName names the payload read from standard input.
const StdinName = "<stdin>"

// Source is one captured payload.
type Source struct {
	Name string
	Data []byte
}

// ReadSources reads every path in order. With no paths, or for the path "-",
// it reads stdin instead.
func ReadSources(paths []string, stdin io.Reader) ([]Source, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		if path == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			sources = append(sources, Source{Name: StdinName, Data: data})
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload: %w", err)
		}
		sources = append(sources, Source{Name: path, Data: data})
	}
	return sources, nil
}
