package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulschiretz/pgl-tosc/pkg/plog"
	"github.com/paulschiretz/pgl-tosc/pkg/usererr"
)

func TestMain(m *testing.M) {
	plog.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestRun(t *testing.T) {
	cwd := t.TempDir()
	if err := os.WriteFile(filepath.Join(cwd, "layout.xml"), []byte("<a>\n  <b/>\n</a>\n"), 0644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name        string
		args        []string
		expectError bool
		expectKind  usererr.Kind
	}{
		{name: "Pack", args: []string{"make-tosc", "layout.xml", "-s"}},
		{name: "Pack Again Without Force", args: []string{"make-tosc", "layout.xml"}, expectError: true, expectKind: usererr.DestinationExists},
		{name: "Extract Pretty To Explicit Output", args: []string{"extract-xml", "-p", "layout.tosc", "-o", "pretty.xml"}},
		{name: "Extract Plain Input", args: []string{"extract-xml", "pretty.xml"}, expectError: true, expectKind: usererr.NotContainer},
		{name: "Pack Container", args: []string{"make-tosc", "layout.tosc", "-o", "twice.tosc"}, expectError: true, expectKind: usererr.AlreadyContainer},
		{name: "Unknown Command", args: []string{"restore"}, expectError: true, expectKind: usererr.InvalidArgument},
	}

	// Cases depend on the files left behind by earlier ones.
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(context.Background(), tc.args, cwd)
			if !tc.expectError {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !usererr.Is(err, tc.expectKind) {
				t.Errorf("expected %v error, got %v", tc.expectKind, err)
			}
		})
	}

	got, err := os.ReadFile(filepath.Join(cwd, "pretty.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "<a>\n  <b/>\n</a>\n"; string(got) != want {
		t.Errorf("expected pretty output %q, got %q", want, got)
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	plog.SetOutput(&buf)
	t.Cleanup(func() { plog.SetOutput(io.Discard) })

	report(usererr.New(usererr.DestinationExists, "output file layout.xml already exists"))
	if got := buf.String(); got != "Error: output file layout.xml already exists\n" {
		t.Errorf("expected user error line, got %q", got)
	}

	buf.Reset()
	report(errors.New("disk on fire"))
	if got := buf.String(); !strings.Contains(got, "level=ERROR") || !strings.Contains(got, "disk on fire") {
		t.Errorf("expected structured error log, got %q", got)
	}
}
