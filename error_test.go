package dstruct

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
)

func TestErrorUnwrap(t *testing.T) {
	err := NewError(NotFound, ErrKeyNotFound, "k")
	if !errors.Is(err, ErrKeyNotFound) || !errors.Is(err, ErrNotFound) {
		t.Errorf("expected %v to match both not found sentinels", err)
	}
	if errors.Is(err, ErrEmpty) {
		t.Errorf("%v should not match ErrEmpty", err)
	}
	wrapped := fmt.Errorf("lookup: %w", err)
	if Code(wrapped) != NotFound {
		t.Errorf("expected code %d, got %d", NotFound, Code(wrapped))
	}
	if Code(errors.New("other")) != Unknown {
		t.Error("foreign errors should have code Unknown")
	}
}

func TestErrorMessage(t *testing.T) {
	got := NewError(IndexOutOfRange, ErrIndexOutOfRange, 5).Error()
	want := "error code: 1, user data: 5, details: index out of range"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	got = Error{Code: EmptyContainer, Err: ErrEmpty}.Error()
	if got != "error code: 3, details: container is empty" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestUUID(t *testing.T) {
	id := NewUUID()
	if id.IsNil() {
		t.Error("new UUID is nil")
	}
	parsed, err := ParseUUID(id.String())
	if err != nil || parsed != id {
		t.Errorf("round trip of %s gave %s (%v)", id, parsed, err)
	}
	if id.Compare(id) != 0 || NilUUID.Compare(id) >= 0 {
		t.Error("unexpected ordering")
	}
	if _, err := ParseUUID("nope"); err == nil {
		t.Error("expected parse error")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"DEBUG": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"ERROR": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestConfigureLoggingRereadsLevel(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	t.Setenv("DSTRUCT_LOG_LEVEL", "DEBUG")
	ConfigureLogging()
	if logLevel.Level() != slog.LevelDebug {
		t.Errorf("expected debug, got %v", logLevel.Level())
	}
	t.Setenv("DSTRUCT_LOG_LEVEL", "ERROR")
	ConfigureLogging()
	if logLevel.Level() != slog.LevelError {
		t.Errorf("expected changed level to be read, got %v", logLevel.Level())
	}
}
