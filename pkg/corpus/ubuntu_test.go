package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestUbuntuEnsureMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ubuntu_dialog_corpus")
	u := &Ubuntu{Dir: dir}

	err := u.Ensure(context.Background())
	var manual *ManualDownloadError
	if !errors.As(err, &manual) {
		t.Fatalf("got %v; want ManualDownloadError", err)
	}
	if manual.Path != dir {
		t.Fatalf("error names path %q; want %q", manual.Path, dir)
	}
	// The directory is created so the user has somewhere to put the files.
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("corpus dir not created: %v", err)
	}

	// A populated (or at least existing) directory passes.
	if err := u.Ensure(context.Background()); err != nil {
		t.Fatalf("second Ensure: %v", err)
	}
}

func TestUbuntuPairs(t *testing.T) {
	dir := t.TempDir()
	csv := "context,response,label\n" +
		"hi there __eou__ __eot__ Hello! __eou__ ,1.0\n" +
		"wrong answer __eou__ __eot__ nope __eou__ ,0.0\n" +
		"too chatty __eou__ __eot__ one __eou__ two __eou__ ,1.0\n" +
		"how do I mount it __eou__ __eot__ use sudo mount __eou__ ,1.0\n"
	if err := os.WriteFile(filepath.Join(dir, "train.csv"), []byte(csv), 0o644); err != nil {
		t.Fatalf("write train.csv: %v", err)
	}

	u := &Ubuntu{Dir: dir}
	pairs, err := u.Pairs()
	if err != nil {
		t.Fatalf("Pairs: %v", err)
	}
	// Row 2 is labeled 0.0 and row 3's response has two __eou__ markers.
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs; want 2: %+v", len(pairs), pairs)
	}
	if pairs[0].Prompt != "hi there" || pairs[0].Response != "hello!" {
		t.Fatalf("pairs[0] = %+v; want lower-cased, marker-stripped pair", pairs[0])
	}
	if pairs[1].Response != "use sudo mount" {
		t.Fatalf("pairs[1] = %+v", pairs[1])
	}
}

func TestUbuntuPairsMissingTrainFile(t *testing.T) {
	u := &Ubuntu{Dir: t.TempDir()}
	_, err := u.Pairs()
	var manual *ManualDownloadError
	if !errors.As(err, &manual) {
		t.Fatalf("got %v; want ManualDownloadError", err)
	}
}
