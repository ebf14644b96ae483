package corpus

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"convopairs/pkg/archive"
)

// CornellURL is the public location of the corpus zip.
const CornellURL = "http://www.mpi-sws.org/~cristian/data/cornell_movie_dialogs_corpus.zip"

// cornellDirName is both the archive's root directory and the local
// directory the corpus lives in.
const cornellDirName = "cornell movie-dialogs corpus"

const (
	cornellLinesFile         = "movie_lines.txt"
	cornellCharactersFile    = "movie_characters_metadata.txt"
	cornellConversationsFile = "movie_conversations.txt"
	cornellMoviesFile        = "movie_titles_metadata.txt"
)

// Cornell is the auto-provisioned Cornell movie-dialogs corpus.
type Cornell struct {
	// DataDir is the parent directory corpora are kept under.
	DataDir string
	// URL overrides CornellURL; empty means the default.
	URL string
	// Decoding is the policy for malformed bytes in the raw tables.
	Decoding DecodePolicy
	// Client and Logger are passed through to the provisioner.
	Client *http.Client
	Logger *slog.Logger
}

// LocalPath is the directory the corpus tables live in.
func (c *Cornell) LocalPath() string {
	return filepath.Join(c.DataDir, cornellDirName)
}

// Ensure fetches and unpacks the corpus if LocalPath is absent.
func (c *Cornell) Ensure(ctx context.Context) error {
	url := c.URL
	if url == "" {
		url = CornellURL
	}
	return archive.Ensure(ctx, archive.Options{
		LocalPath: c.LocalPath(),
		URL:       url,
		RootDir:   cornellDirName,
		Client:    c.Client,
		Logger:    c.Logger,
	})
}

// Load parses the four corpus tables into an Index.
func (c *Cornell) Load() (*Index, error) {
	lines, err := loadCornellTable(c, cornellLinesFile, parseLineTable)
	if err != nil {
		return nil, err
	}
	chars, err := loadCornellTable(c, cornellCharactersFile, parseCharacterTable)
	if err != nil {
		return nil, err
	}
	movies, err := loadCornellTable(c, cornellMoviesFile, parseMovieTable)
	if err != nil {
		return nil, err
	}
	conversations, err := loadCornellTable(c, cornellConversationsFile, parseConversationTable)
	if err != nil {
		return nil, err
	}
	return NewIndex(lines, chars, movies, conversations), nil
}

// Pairs loads the index and extracts every adjacent pair.
func (c *Cornell) Pairs() ([]DialoguePair, error) {
	ix, err := c.Load()
	if err != nil {
		return nil, err
	}
	return ix.All()
}

type tableParser[T any] func(r io.Reader, policy DecodePolicy, name string) ([]T, error)

func loadCornellTable[T any](c *Cornell, name string, parse tableParser[T]) ([]T, error) {
	path := filepath.Join(c.LocalPath(), name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus table: %w", err)
	}
	defer f.Close()
	return parse(f, c.Decoding, name)
}
