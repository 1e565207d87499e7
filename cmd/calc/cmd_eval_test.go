package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestEvalCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "no arguments",
			args: []string{},
			want: "",
		},
		{
			name: "single expression",
			args: []string{"1+2*3"},
			want: "7\n",
		},
		{
			name: "several expressions",
			args: []string{"1-2+3", "2^3^2", "-2^4"},
			want: "2\n512\n16\n",
		},
		{
			name:    "failure stops further evaluation",
			args:    []string{"1+1", "(1+2", "3+3"},
			want:    "2\n(1+2\n    ^\nExpecting )\n",
			wantErr: true,
		},
		{
			name:    "division by zero diagnostic",
			args:    []string{"5/0"},
			want:    "5/0\n   ^\nDivision by 0\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newEvalCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() err = %v, wantErr %v", err, tt.wantErr)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestREPLCmd(t *testing.T) {
	cmd := newREPLCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("1+2\n3 4\n:quit\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() err = %v", err)
	}
	want := "> 3\n> 3 4\n  ^\nSyntax error\n> "
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
