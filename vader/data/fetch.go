//go:build ignore

// Fetch downloads the published VADER lexicons into this directory.
// Run through go generate in package vader.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/drankou/vader-sentiment/vader"
)

const upstream = "https://raw.githubusercontent.com/cjhutto/vaderSentiment/master/vaderSentiment/"

func main() {
	dir := flag.String("dir", ".", "output directory")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	files := []struct {
		name     string
		validate func(io.Reader) (int, error)
	}{
		{"vader_lexicon.txt", func(r io.Reader) (int, error) {
			l, err := vader.ParseLexicon(r)
			return len(l), err
		}},
		{"emoji_utf8_lexicon.txt", func(r io.Reader) (int, error) {
			l, err := vader.ParseEmojiLexicon(r)
			return len(l), err
		}},
	}

	for _, f := range files {
		if err := fetch(ctx, *dir, f.name, f.validate); err != nil {
			log.Fatal("fetch failed", "file", f.name, "err", err)
		}
	}
}

func fetch(ctx context.Context, dir, name string, validate func(io.Reader) (int, error)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, upstream+name, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", req.URL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	n, err := validate(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("validate %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(dir, name), body, 0o644); err != nil {
		return err
	}
	log.Info("wrote lexicon", "file", name, "entries", n)
	return nil
}
