package match

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load reads a match log from disk. The first record is the match
// configuration, every following record is one frame snapshot, one JSON
// object per line.
func Load(path string) (*Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("match: cannot open log %s: %w", path, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("match: %s: %w", path, err)
	}
	return m, nil
}

// Read parses a match log from a stream.
func Read(r io.Reader) (*Match, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var m Match
	line := 0
	for scanner.Scan() {
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		line++
		if line == 1 {
			if err := json.Unmarshal(raw, &m.Config); err != nil {
				return nil, fmt.Errorf("record 1 is not a valid configuration: %w", err)
			}
			continue
		}
		var f Frame
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("record %d is not a valid frame: %w", line, err)
		}
		m.Frames = append(m.Frames, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read log: %w", err)
	}
	if line == 0 {
		return nil, fmt.Errorf("match: log is empty")
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
