package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/ordkit/cmd/omapctl/logger"
	"github.com/joshuapare/ordkit/internal/kvtext"
)

// loadDocument parses the document at path with the global encoding and
// strictness flags.
func loadDocument(path string) (*kvtext.Document, error) {
	printVerbose("Opening document: %s\n", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	doc, err := kvtext.Parse(f, kvtext.ParseOptions{Encoding: encoding, Strict: strict})
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	sections, values := kvtext.Count(doc)
	logger.Document(path).Debug("document loaded", "sections", sections, "values", values)
	return doc, nil
}

// saveDocument writes doc to path atomically: it is encoded to path.tmp,
// which then replaces path. With backup set the previous file is first
// copied to path.bak.
func saveDocument(path string, doc *kvtext.Document, backup bool) error {
	if backup && fileExists(path) {
		backupPath := path + ".bak"
		if err := copyFile(path, backupPath); err != nil {
			return fmt.Errorf("failed to create backup at %s: %w", backupPath, err)
		}
		printVerbose("Backup created: %s\n", backupPath)
	}

	var buf bytes.Buffer
	if err := kvtext.EncodeWith(&buf, doc, kvtext.EncodeOptions{Encoding: encoding, CRLF: crlf}); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace document: %w", err)
	}

	logger.Document(path).Debug("document written", "bytes", buf.Len())
	return nil
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy data: %w", err)
	}
	return dstFile.Close()
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
