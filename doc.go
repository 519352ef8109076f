// File: lixenwraith/ini/doc.go

// Package ini reads and writes flat INI-style configuration files: grouped
// [section] blocks of key=value lines, with typed access to values.
//
// Features:
//   - Ordered record store that preserves the file layout on write-back
//   - Byte-deterministic encoder (one blank line between groups, no trailing newline)
//   - Generic typed accessors for strings, booleans, runes, integers and floats
//   - Optional case-insensitive groups and keys
//   - Struct scanning of a group with `ini` tags
//   - Export to and import from TOML, YAML and JSON
//   - Builder pattern with defaults and validators
//
// Quick Start:
//
//	f, err := ini.Open("settings.ini")
//	if errors.Is(err, ini.ErrPathNotFound) {
//	    log.Println("starting with an empty configuration")
//	} else if err != nil {
//	    log.Fatal(err)
//	}
//
//	ini.Write(f, "Graphics", "width", 1920, false)
//	width, err := ini.Read[int](f, "Graphics", "width")
//
//	if err := f.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// File format:
//
//	[Graphics]
//	width=1920
//	fullscreen=1
//
//	[Audio]
//	volume=0.8
//
// Groups are stored with their brackets ("[Graphics]"); accessors take the bare
// name and add the brackets. Values are split from keys on the first '=' and are
// never trimmed. Booleans are true only for the literal value "1".
//
// Missing keys are not errors: Read returns the zero value of the requested type
// (' ' for Char). Only I/O operations change the handle's last status.
//
// Thread Safety:
// A File is not safe for concurrent use. Callers sharing one handle across
// goroutines must synchronize externally.
package ini
