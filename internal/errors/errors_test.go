package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"config", "E100", "Configuration file not found", CategoryConfig},
		{"migration", "E111", "Database migration failed", CategoryDatabase},
		{"serverfn", "E201", "Server function registered twice", CategoryServerFn},
		{"unknown", "E999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := New("E111").Wrap(cause)

	if got, want := err.Error(), "E111: Database migration failed: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
	if got := Newf(CategoryCLI, "bad flag %q", "x").Error(); got != `bad flag "x"` {
		t.Errorf("Newf Error() = %q", got)
	}
}

func TestIsMatchesCode(t *testing.T) {
	wrapped := fmt.Errorf("startup: %w", New("E110").WithDetail("sqlite"))
	if !stderrors.Is(wrapped, New("E110")) {
		t.Error("errors.Is should match on code")
	}
	if stderrors.Is(wrapped, New("E111")) {
		t.Error("errors.Is matched a different code")
	}
	if stderrors.Is(Newf(CategoryCLI, "x"), Newf(CategoryCLI, "x")) {
		t.Error("uncoded errors should not match each other")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E110") != nil {
		t.Error("FromError(nil) should be nil")
	}

	orig := New("E101")
	if got := FromError(fmt.Errorf("load: %w", orig), "E110"); got != orig {
		t.Error("FromError should return the wrapped *Error")
	}

	plain := stderrors.New("boom")
	got := FromError(plain, "E110")
	if got.Code != "E110" || !stderrors.Is(got, plain) {
		t.Errorf("FromError(plain) = %v", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E100").
		WithDetail("chatapp.json was not found in /srv/app").
		WithSuggestion("Create chatapp.json or pass --config").
		Wrap(stderrors.New("no such file"))
	out := err.Format()

	for _, want := range []string{
		"ERROR E100: Configuration file not found",
		"chatapp.json was not found in /srv/app",
		"Cause: no such file",
		"Hint: Create chatapp.json or pass --config",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() used colors while disabled")
	}
}

func TestPrint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Print(&buf, New("E120"))
	if !strings.Contains(buf.String(), "ERROR E120: Failed to listen") {
		t.Errorf("Print(coded) = %q", buf.String())
	}

	buf.Reset()
	Print(&buf, stderrors.New("plain"))
	if buf.String() != "Error: plain\n" {
		t.Errorf("Print(plain) = %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText(strings.Repeat("word ", 30), 20)
	for _, l := range lines {
		if len(l) > 20 {
			t.Errorf("line %q longer than 20", l)
		}
	}
	if len(lines) < 2 {
		t.Errorf("got %d lines, want several", len(lines))
	}
}
