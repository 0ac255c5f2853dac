// Package clipboard adapts the host clipboard to offset reads and writes.
package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrNoEntry signals that the clipboard history has nothing at the requested offset.
var ErrNoEntry = errors.New("clipboard: no entry at offset")

// Clipboard reads clipboard history by offset and writes text back.
type Clipboard interface {
	// Read returns the entry at offset, 0 being the most recent.
	Read(ctx context.Context, offset int) (string, error)
	// Copy places text on the clipboard.
	Copy(ctx context.Context, text string) error
	// Paste places text on the clipboard and hands it to the foreground application.
	Paste(ctx context.Context, text string) error
	// Selection returns the currently selected text, if the host exposes one.
	Selection(ctx context.Context) (string, error)
}

// System talks to the OS clipboard.
//
// Only offset 0 is available from the OS itself. When ReadCommand is set
// (for example "copyq read") every offset is read by running it with the
// offset appended as the last argument.
type System struct {
	ReadCommand  string
	PasteCommand string

	// hooks for tests
	readAll  func() (string, error)
	writeAll func(string) error
	run      func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewSystem returns a System clipboard using the given helper commands.
func NewSystem(readCommand, pasteCommand string) *System {
	return &System{
		ReadCommand:  strings.TrimSpace(readCommand),
		PasteCommand: strings.TrimSpace(pasteCommand),
	}
}

func (s *System) Read(ctx context.Context, offset int) (string, error) {
	if offset < 0 {
		return "", ErrNoEntry
	}
	if s.ReadCommand != "" {
		fields := strings.Fields(s.ReadCommand)
		args := append(fields[1:], strconv.Itoa(offset))
		out, err := s.runner()(ctx, fields[0], args...)
		if err != nil || len(out) == 0 {
			return "", ErrNoEntry
		}
		return string(out), nil
	}
	if offset > 0 {
		return "", ErrNoEntry
	}
	text, err := s.reader()()
	if err != nil {
		return "", fmt.Errorf("clipboard: read: %w", err)
	}
	if text == "" {
		return "", ErrNoEntry
	}
	return text, nil
}

func (s *System) Copy(_ context.Context, text string) error {
	if s.writeAll == nil && clipboard.Unsupported {
		return errors.New("clipboard: no clipboard utility available")
	}
	if err := s.writer()(text); err != nil {
		return fmt.Errorf("clipboard: write: %w", err)
	}
	return nil
}

func (s *System) Paste(ctx context.Context, text string) error {
	if err := s.Copy(ctx, text); err != nil {
		return err
	}
	if s.PasteCommand == "" {
		return nil
	}
	fields := strings.Fields(s.PasteCommand)
	if _, err := s.runner()(ctx, fields[0], fields[1:]...); err != nil {
		return fmt.Errorf("clipboard: paste command: %w", err)
	}
	return nil
}

// Selection reads the primary selection where the platform has one.
func (s *System) Selection(_ context.Context) (string, error) {
	text, err := readSelection(s.reader())
	if err != nil {
		return "", nil
	}
	return text, nil
}

func (s *System) reader() func() (string, error) {
	if s.readAll != nil {
		return s.readAll
	}
	return clipboard.ReadAll
}

func (s *System) writer() func(string) error {
	if s.writeAll != nil {
		return s.writeAll
	}
	return clipboard.WriteAll
}

func (s *System) runner() func(ctx context.Context, name string, args ...string) ([]byte, error) {
	if s.run != nil {
		return s.run
	}
	return runCommand
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}
