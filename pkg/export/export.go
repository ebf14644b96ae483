// Package export serializes dialogue pairs to paired .enc/.dec text files.
package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"convopairs/pkg/corpus"
)

// WriteLines writes each string followed by a newline to path, creating
// parent directories as needed and overwriting any existing file. Writes
// are buffered but not atomic: a crash can leave a partial file behind.
func WriteLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Pairs writes an aligned file pair under dir: <prefix>.enc holds the
// prompts and <prefix>.dec the responses, line for line.
func Pairs(dir, prefix string, pairs []corpus.DialoguePair) error {
	prompts := make([]string, len(pairs))
	responses := make([]string, len(pairs))
	for i, p := range pairs {
		prompts[i] = p.Prompt
		responses[i] = p.Response
	}
	if err := WriteLines(filepath.Join(dir, prefix+".enc"), prompts); err != nil {
		return err
	}
	return WriteLines(filepath.Join(dir, prefix+".dec"), responses)
}

// Split writes train.enc/train.dec and, when test is non-empty,
// test.enc/test.dec under dir.
func Split(dir string, train, test []corpus.DialoguePair) error {
	if err := Pairs(dir, "train", train); err != nil {
		return err
	}
	if len(test) == 0 {
		return nil
	}
	return Pairs(dir, "test", test)
}
