package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownTool    = errors.New("unknown tool")
	ErrIO             = errors.New("io failure")
	ErrParse          = errors.New("parse failure")
	ErrNoBackup       = errors.New("no backup found")
	ErrAllUnreachable = errors.New("all mirrors unreachable")
	ErrMirrorNotFound = errors.New("mirror not found")
)

// UnknownToolError is returned by registry lookups. It carries the supported
// identifiers so the caller can print them.
type UnknownToolError struct {
	Name       string
	Suggestion string
	Supported  []string
}

func (e *UnknownToolError) Error() string {
	msg := fmt.Sprintf("unknown tool %q (supported: %s)", e.Name, strings.Join(e.Supported, ", "))
	if e.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean %q?", e.Suggestion)
	}
	return msg
}

func (e *UnknownToolError) Is(target error) bool { return target == ErrUnknownTool }

// PathError ties a failure kind (ErrIO, ErrParse, ErrNoBackup) to the file it
// happened on. Both the kind and the underlying cause match errors.Is.
type PathError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func IO(op, path string, err error) error {
	return &PathError{Op: op, Path: path, Kind: ErrIO, Err: err}
}

func Parse(path string, err error) error {
	return &PathError{Op: "parse", Path: path, Kind: ErrParse, Err: err}
}

func NoBackup(path string) error {
	return &PathError{Op: "restore", Path: path, Kind: ErrNoBackup}
}
