package flagparse

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/paulschiretz/pgl-tosc/pkg/usererr"
)

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		input     string
		expected  Command
		expectErr bool
	}{
		{"extract-xml", ExtractXML, false},
		{"make-tosc", MakeTosc, false},
		{"version", Version, false},
		{"none", None, true},
		{"backup", None, true},
		{"", None, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseCommand(tc.input)
			if (err != nil) != tc.expectErr {
				t.Fatalf("expected error=%v, got %v", tc.expectErr, err)
			}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		expectedCmd Command
		expectedMap map[string]interface{}
	}{
		{
			name:        "Extract With Positional Only",
			args:        []string{"extract-xml", "layout.tosc"},
			expectedCmd: ExtractXML,
			expectedMap: map[string]interface{}{InputKey: "layout.tosc"},
		},
		{
			name:        "Extract Long Flags Before Positional",
			args:        []string{"extract-xml", "-output-path", "out.xml", "--force", "--pretty-xml", "layout.tosc"},
			expectedCmd: ExtractXML,
			expectedMap: map[string]interface{}{InputKey: "layout.tosc", "output-path": "out.xml", "force": true, "pretty-xml": true},
		},
		{
			name:        "Extract Short Flags After Positional",
			args:        []string{"extract-xml", "layout.tosc", "-o", "out.xml", "-f", "-p"},
			expectedCmd: ExtractXML,
			expectedMap: map[string]interface{}{InputKey: "layout.tosc", "output-path": "out.xml", "force": true, "pretty-xml": true},
		},
		{
			name:        "Command Is Case Insensitive",
			args:        []string{"EXTRACT-XML", "layout.tosc"},
			expectedCmd: ExtractXML,
			expectedMap: map[string]interface{}{InputKey: "layout.tosc"},
		},
		{
			name:        "Pack With All Flags",
			args:        []string{"make-tosc", "-s", "layout.xml", "--compression-level=best", "-log-level", "debug", "-metrics"},
			expectedCmd: MakeTosc,
			expectedMap: map[string]interface{}{InputKey: "layout.xml", "shrink-xml": true, "compression-level": "best", "log-level": "debug", "metrics": true},
		},
		{
			name:        "Quiet Short Form",
			args:        []string{"extract-xml", "-q", "layout.tosc"},
			expectedCmd: ExtractXML,
			expectedMap: map[string]interface{}{InputKey: "layout.tosc", "quiet": true},
		},
		{
			name:        "Quiet Long Form",
			args:        []string{"make-tosc", "layout.xml", "--quiet"},
			expectedCmd: MakeTosc,
			expectedMap: map[string]interface{}{InputKey: "layout.xml", "quiet": true},
		},
		{
			name:        "Pack Without Positional",
			args:        []string{"make-tosc", "-f"},
			expectedCmd: MakeTosc,
			expectedMap: map[string]interface{}{"force": true},
		},
		{
			name:        "Positional After Terminator",
			args:        []string{"make-tosc", "-f", "--", "-odd-name.xml"},
			expectedCmd: MakeTosc,
			expectedMap: map[string]interface{}{InputKey: "-odd-name.xml", "force": true},
		},
		{
			name:        "Version Ignores Flags",
			args:        []string{"version", "-whatever"},
			expectedCmd: Version,
			expectedMap: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, flagMap, err := parse(tc.args, io.Discard)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if cmd != tc.expectedCmd {
				t.Errorf("expected command %v, got %v", tc.expectedCmd, cmd)
			}
			if len(flagMap) != len(tc.expectedMap) {
				t.Fatalf("expected %d flags, got %d: %v", len(tc.expectedMap), len(flagMap), flagMap)
			}
			for k, want := range tc.expectedMap {
				if got, ok := flagMap[k]; !ok || got != want {
					t.Errorf("expected flag %q to be %v, got %v (present=%v)", k, want, got, ok)
				}
			}
		})
	}
}

func TestParse_Help(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{"No Args", nil, "Commands:"},
		{"Help Command", []string{"help"}, "Commands:"},
		{"Dash Help", []string{"--help"}, "Commands:"},
		{"Subcommand Help", []string{"make-tosc", "-help"}, "-compression-level"},
		{"Extract Help", []string{"extract-xml", "-h"}, "-pretty-xml"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			cmd, flagMap, err := parse(tc.args, &buf)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if cmd != None || flagMap != nil {
				t.Errorf("expected None with nil map, got %v %v", cmd, flagMap)
			}
			if !strings.Contains(buf.String(), tc.expected) {
				t.Errorf("expected usage to contain %q, got:\n%s", tc.expected, buf.String())
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"Unknown Command", []string{"backup"}},
		{"Unknown Flag", []string{"extract-xml", "layout.tosc", "-shrink-xml"}},
		{"Pack Flag On Extract", []string{"extract-xml", "--compression-level", "best", "layout.tosc"}},
		{"Missing Flag Value", []string{"make-tosc", "layout.xml", "-o"}},
		{"Two Positionals", []string{"make-tosc", "a.xml", "b.xml"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parse(tc.args, io.Discard)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !usererr.Is(err, usererr.InvalidArgument) {
				t.Errorf("expected InvalidArgument user error, got %v", err)
			}
		})
	}
}
