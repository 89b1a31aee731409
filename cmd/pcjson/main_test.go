// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(new(bytes.Buffer))
	err := cmd.Execute()
	return out.String(), err
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
		fail  bool
	}{
		{"Args", "", []string{"parse", `"x"`, "42abc", "nullx"},
			"\"x\"\t\"\"\n42\t\"abc\"\nnull\t\"x\"\n", false},
		{"NoMatch", "", []string{"parse", "truthy", "1"},
			"no match\n1\t\"\"\n", true},
		{"Stdin", "\"a b\"\n7\n", []string{"parse"},
			"\"a b\"\t\"\"\n7\t\"\"\n", false},
		{"SkipSpaces", "", []string{"parse", "-s", "   null "},
			"null\t\" \"\n", false},
		{"NoSkipSpaces", "", []string{"parse", "   null"},
			"no match\n", true},
		{"Strict", "", []string{"parse", "--strict", "12", "12 "},
			"12\nerror: at 1:2: extra input after value (offset 2)\n", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runCmd(t, tc.stdin, tc.args...)
			if err != nil && !tc.fail {
				t.Errorf("Execute: unexpected error: %v", err)
			} else if err == nil && tc.fail {
				t.Error("Execute: got nil, want error")
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Output (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`"s"`, "string\n"},
		{`15`, "number\n"},
		{`null`, "null\n"},
	}
	for _, tc := range tests {
		got, err := runCmd(t, "", "kind", tc.input)
		if err != nil {
			t.Errorf("kind %q: unexpected error: %v", tc.input, err)
		} else if got != tc.want {
			t.Errorf("kind %q: got %q, want %q", tc.input, got, tc.want)
		}
	}

	if _, err := runCmd(t, "", "kind", "true"); err == nil {
		t.Error("kind true: got nil, want error")
	}
}
