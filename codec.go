// FILE: lixenwraith/ini/codec.go
package ini

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FoldFunc normalizes group and key text before storage and lookup.
// A nil FoldFunc leaves text unchanged.
type FoldFunc func(string) string

// LowerCase folds text to lower case using Unicode case mapping.
func LowerCase(s string) string {
	return cases.Lower(language.Und).String(s)
}

func (fold FoldFunc) apply(s string) string {
	if fold == nil {
		return s
	}
	return fold(s)
}

// isHeader reports whether a line is a group header: first byte '[' and last byte ']'.
// Empty lines are never headers.
func isHeader(line string) bool {
	return len(line) > 0 && line[0] == '[' && line[len(line)-1] == ']'
}

// Decode reads INI text from r and returns its records in file order.
// Headers are kept verbatim (brackets included, no trimming) and become the
// group of the lines that follow. Other lines split on the first '='; a line
// whose key and value are both empty is dropped. Lines before the first
// header are stored under the empty group. fold is applied to groups and keys,
// never to values.
//
// A read failure other than end of input returns an error wrapping ErrFailedToInput
// together with the records decoded so far.
func Decode(r io.Reader, fold FoldFunc) ([]Record, error) {
	var records []Record
	var group string

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return records, fmt.Errorf("%w: read failed after %d records: %w", ErrFailedToInput, len(records), err)
		}
		atEOF := err != nil

		line = strings.TrimSuffix(line, "\n")
		if lineEnding == "\r\n" {
			line = strings.TrimSuffix(line, "\r")
		}

		switch {
		case line == "":
			// blank lines carry no record
		case isHeader(line):
			group = line
		default:
			key, value, _ := strings.Cut(line, "=")
			if key != "" || value != "" {
				records = append(records, Record{
					Group: fold.apply(group),
					Key:   fold.apply(key),
					Value: value,
				})
			}
		}

		if atEOF {
			return records, nil
		}
	}
}

// DecodeFile opens path for reading and decodes it. The file is closed on every
// return path. An open failure wraps ErrFailedToOpen.
func DecodeFile(path string, fold FoldFunc) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: config file '%s': %w", ErrFailedToOpen, path, err)
	}
	defer file.Close()

	records, err := Decode(file, fold)
	if err != nil {
		return records, fmt.Errorf("config file '%s': %w", path, err)
	}
	return records, nil
}

// Encode writes records to w in store order. A header line is emitted whenever
// the group differs from the previous record's group, preceded by a blank line
// unless it is the first line written. Records of the empty group at the start
// of the store get no header. Every line except the last ends with the host line
// terminator.
//
// Groups are not coalesced: a group that reappears after another group gets its
// header written again.
func Encode(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	var group string

	for i, r := range records {
		if r.Group != group {
			if i > 0 {
				bw.WriteString(lineEnding)
			}
			bw.WriteString(r.Group)
			bw.WriteString(lineEnding)
			group = r.Group
		}

		bw.WriteString(r.Key)
		bw.WriteByte('=')
		if _, err := bw.WriteString(r.Value); err != nil {
			return fmt.Errorf("%w: record %d [%s] %s: %w", ErrFailedToOutput, i, r.Group, r.Key, err)
		}

		if i != len(records)-1 {
			if _, err := bw.WriteString(lineEnding); err != nil {
				return fmt.Errorf("%w: record %d [%s] %s: %w", ErrFailedToOutput, i, r.Group, r.Key, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: flush failed: %w", ErrFailedToOutput, err)
	}
	return nil
}

// EncodeFile truncates or creates path and encodes records into it.
// An open failure wraps ErrFailedToOpen; a write or close failure wraps
// ErrFailedToOutput.
func EncodeFile(path string, records []Record) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: config file '%s': %w", ErrFailedToOpen, path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: failed to close config file '%s': %w", ErrFailedToOutput, path, cerr)
		}
	}()

	if err := Encode(file, records); err != nil {
		return fmt.Errorf("config file '%s': %w", path, err)
	}
	return nil
}

// EncodeFileAtomic encodes records into a temporary file in the target directory
// and renames it over path, so readers never observe a partial file.
func EncodeFileAtomic(path string, records []Record) error {
	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		return err
	}
	return atomicWriteFile(path, buf.Bytes())
}

// atomicWriteFile performs atomic file write
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temporary file in '%s': %w", ErrFailedToOpen, dir, err)
	}

	tempPath := tempFile.Name()
	removed := false
	defer func() {
		if !removed {
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("%w: failed to write temporary file '%s': %w", ErrFailedToOutput, tempPath, err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("%w: failed to sync temporary file '%s': %w", ErrFailedToOutput, tempPath, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("%w: failed to close temporary file '%s': %w", ErrFailedToOutput, tempPath, err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("%w: failed to set permissions on '%s': %w", ErrFailedToOutput, tempPath, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("%w: failed to rename '%s' to '%s': %w", ErrFailedToOutput, tempPath, path, err)
	}
	removed = true

	return nil
}
