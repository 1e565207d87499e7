package expr

import "testing"

func TestErrorDiagnostic(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(1+2", "(1+2\n    ^\nExpecting )"},
		{"3 4", "3 4\n  ^\nSyntax error"},
		{"5/0", "5/0\n   ^\nDivision by 0"},
		{"", "\n^\nSyntax error"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Eval(tt.input)
			if err == nil {
				t.Fatalf("Eval(%q) succeeded", tt.input)
			}
			got := err.(*Error).Diagnostic()
			if got != tt.want {
				t.Errorf("Diagnostic() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	_, err := Eval("(1+2")
	if err == nil {
		t.Fatal("Eval succeeded")
	}
	if got, want := err.Error(), "4: Expecting )"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := err.(*Error).Pos(); got != 4 {
		t.Errorf("Pos() = %d, want 4", got)
	}
}
