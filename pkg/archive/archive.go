// Package archive provisions a local corpus directory from a remote zip.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// Options describes one provisioning target.
type Options struct {
	// LocalPath is the directory that must exist afterwards. If it already
	// exists, Ensure is a no-op: contents are not validated.
	LocalPath string
	// URL of the zip archive to fetch when LocalPath is absent.
	URL string
	// RootDir is the expected top-level directory inside the archive. Only
	// members under it are extracted, and its children are flattened up
	// into LocalPath.
	RootDir string
	// Client overrides the HTTP client. Nil means a default client with no
	// timeout; corpus archives are large.
	Client *http.Client
	// Logger for progress messages. Nil disables logging.
	Logger *slog.Logger
}

// Ensure makes LocalPath exist, fetching and unpacking the archive if it
// does not. Network and archive-format errors are fatal; there is no retry
// and no cleanup of a partially extracted directory. A file lock next to
// LocalPath keeps two processes from unpacking into it concurrently.
func Ensure(ctx context.Context, opts Options) error {
	if _, err := os.Stat(opts.LocalPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := os.MkdirAll(filepath.Dir(opts.LocalPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	lock := flock.New(opts.LocalPath + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire provisioning lock: %w", err)
	}
	defer lock.Unlock()

	// Another process may have finished while we waited on the lock.
	if _, err := os.Stat(opts.LocalPath); err == nil {
		return nil
	}

	logger.Info("fetching corpus archive", "url", opts.URL)
	tmp, err := download(ctx, opts)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	extracted, err := extract(tmp, opts.LocalPath, opts.RootDir)
	if err != nil {
		return err
	}
	if extracted == 0 {
		return fmt.Errorf("archive has no members under root directory %q", opts.RootDir)
	}

	if err := flatten(opts.LocalPath, opts.RootDir); err != nil {
		return err
	}
	logger.Info("corpus provisioned", "path", opts.LocalPath, "files", extracted)
	return nil
}

// download streams the archive to a temp file and returns its path. Zip
// extraction needs random access, so the body cannot be unpacked in flight.
func download(ctx context.Context, opts Options) (string, error) {
	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.URL, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", opts.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %s", opts.URL, resp.Status)
	}

	tmp, err := os.CreateTemp("", "convopairs-*.zip")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("download archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// extract unpacks the members under rootDir into localPath, preserving the
// archive's relative layout. Hidden OS artifacts are skipped.
func extract(zipPath, localPath, rootDir string) (int, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return 0, fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	count := 0
	for _, member := range zr.File {
		name := path.Clean(member.Name)
		if strings.HasPrefix(name, "..") || filepath.IsAbs(name) {
			return count, fmt.Errorf("archive member escapes extraction root: %q", member.Name)
		}
		parts := strings.Split(name, "/")
		if parts[0] != rootDir || path.Base(name) == ".DS_Store" {
			continue
		}
		if member.FileInfo().IsDir() {
			continue
		}
		dest := filepath.Join(localPath, filepath.FromSlash(name))
		if err := extractFile(member, dest); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func extractFile(member *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	in, err := member.Open()
	if err != nil {
		return fmt.Errorf("read archive member %s: %w", member.Name, err)
	}
	defer in.Close()
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("extract %s: %w", member.Name, err)
	}
	return out.Close()
}

// flatten moves the children of localPath/rootDir up into localPath and
// removes the emptied root directory.
func flatten(localPath, rootDir string) error {
	root := filepath.Join(localPath, rootDir)
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("flatten archive root: %w", err)
	}
	for _, entry := range entries {
		if err := os.Rename(filepath.Join(root, entry.Name()), filepath.Join(localPath, entry.Name())); err != nil {
			return fmt.Errorf("flatten archive root: %w", err)
		}
	}
	return os.RemoveAll(root)
}
