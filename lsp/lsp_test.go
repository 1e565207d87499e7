package lsp

import "testing"

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []struct {
			line    uint32
			char    uint32
			message string
		}
	}{
		{
			name: "empty document",
			text: "",
			want: nil,
		},
		{
			name: "all lines valid",
			text: "1+2\n2^3^2\n\n(1+2)*3\n",
			want: nil,
		},
		{
			name: "syntax error on second line",
			text: "1+2\n3 4\n",
			want: []struct {
				line    uint32
				char    uint32
				message string
			}{
				{1, 2, "Syntax error"},
			},
		},
		{
			name: "multiple failing lines",
			text: "(1+2\n5/0\n42",
			want: []struct {
				line    uint32
				char    uint32
				message string
			}{
				{0, 4, "Expecting )"},
				{1, 3, "Division by 0"},
			},
		},
		{
			name: "crlf document",
			text: "1+2\r\n1+*2\r\n",
			want: []struct {
				line    uint32
				char    uint32
				message string
			}{
				{1, 2, "Syntax error"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diagnostics(tt.text)
			if got == nil {
				t.Fatal("Diagnostics returned nil, want non-nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d diagnostics, want %d", len(got), len(tt.want))
			}
			for i, want := range tt.want {
				d := got[i]
				if uint32(d.Range.Start.Line) != want.line {
					t.Errorf("diagnostic %d: line = %d, want %d", i, d.Range.Start.Line, want.line)
				}
				if uint32(d.Range.Start.Character) != want.char {
					t.Errorf("diagnostic %d: character = %d, want %d", i, d.Range.Start.Character, want.char)
				}
				if d.Message != want.message {
					t.Errorf("diagnostic %d: message = %q, want %q", i, d.Message, want.message)
				}
			}
		})
	}
}
