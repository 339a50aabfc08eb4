package finetune

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Read parses a JSONL training file. Blank lines are skipped; any malformed
// line fails the whole read with its line number.
func Read(r io.Reader) ([]Example, error) {
	var ret []Example

	scanner := bufio.NewScanner(r)
	// fine-tuning examples routinely exceed bufio's default line limit
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var example Example
		if err := json.Unmarshal([]byte(line), &example); err != nil {
			return nil, errors.Wrapf(err, "line %d: could not parse training example", lineNo)
		}
		ret = append(ret, example)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read training file")
	}

	return ret, nil
}

func ReadFile(path string) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open training file %s", path)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	return Read(f)
}

// Write serializes examples as JSONL, one example per line.
func Write(w io.Writer, examples []Example) error {
	encoder := json.NewEncoder(w)
	for i, example := range examples {
		if err := encoder.Encode(example); err != nil {
			return errors.Wrapf(err, "could not encode training example %d", i)
		}
	}
	return nil
}

func WriteFile(path string, examples []Example) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create training file %s", path)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	return Write(f, examples)
}
