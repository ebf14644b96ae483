package corpus

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// ubuntuInstructions points at the tooling that produces train.csv.
const ubuntuInstructions = "see https://github.com/rkadlec/ubuntu-ranking-dataset-creator"

const ubuntuTrainFile = "train.csv"

var (
	eouMarker = regexp.MustCompile(`__eou__`)
	eouStrip  = regexp.MustCompile(`\s?__eou__\s?`)
)

// Ubuntu is the Ubuntu dialogue corpus. It cannot be auto-provisioned: the
// dataset is produced by an external generation script, so Ensure only
// creates the directory and tells the user what to put in it.
type Ubuntu struct {
	// Dir is the directory holding train.csv.
	Dir string
}

// Ensure reports a ManualDownloadError naming Dir when the corpus is
// absent, creating the directory so the user has somewhere to put the
// files. An existing directory passes without content validation.
func (u *Ubuntu) Ensure(ctx context.Context) error {
	if _, err := os.Stat(u.Dir); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(u.Dir, 0o755); err != nil {
		return fmt.Errorf("create corpus dir: %w", err)
	}
	return &ManualDownloadError{Path: u.Dir, Instructions: ubuntuInstructions}
}

// Pairs builds prompt/response pairs from train.csv. Each row is a
// dialogue context, a candidate response, and a label; only rows labeled
// 1.0 (true response) are kept. Turns are separated by __eot__ and
// utterances by __eou__; a candidate containing two or more __eou__
// markers is discarded, the rest are lower-cased and stripped of markers.
func (u *Ubuntu) Pairs() ([]DialoguePair, error) {
	path := filepath.Join(u.Dir, ubuntuTrainFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ManualDownloadError{Path: u.Dir, Instructions: ubuntuInstructions}
		}
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if sc.Scan() {
		// header row
	}

	var pairs []DialoguePair
	for sc.Scan() {
		row := sc.Text()
		parts := strings.Split(row, "__eot__")
		if len(parts) < 2 {
			continue
		}
		if !ubuntuRowIsTrue(row) {
			continue
		}
		last := parts[len(parts)-1]
		// Drop the trailing ",<label>" from the candidate response.
		if i := strings.LastIndex(last, ","); i >= 0 {
			last = last[:i]
		}
		response := strings.Trim(strings.ToLower(last), ` ,"`)
		if len(eouMarker.FindAllString(response, -1)) >= 2 {
			continue
		}
		prompt := strings.ToLower(strings.TrimSpace(parts[len(parts)-2]))
		pairs = append(pairs, DialoguePair{
			Prompt:   strings.TrimSpace(eouStrip.ReplaceAllString(prompt, " ")),
			Response: strings.TrimSpace(eouStrip.ReplaceAllString(response, " ")),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", ubuntuTrainFile, err)
	}
	return pairs, nil
}

// ubuntuRowIsTrue checks the label in the row's final CSV field.
func ubuntuRowIsTrue(row string) bool {
	i := strings.LastIndex(row, ",")
	if i < 0 {
		return false
	}
	label, err := strconv.ParseFloat(strings.TrimSpace(row[i+1:]), 64)
	return err == nil && label == 1.0
}
