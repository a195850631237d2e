package diag

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Location
	}{
		{
			name: "gcc with column",
			text: "/a/b.c:42:7: error: x",
			want: Location{Valid: true, Filename: "/a/b.c", Line: 42, Column: 7},
		},
		{
			name: "go without column",
			text: "./main.go:12: undefined: y",
			want: Location{Valid: true, Filename: "./main.go", Line: 12},
		},
		{
			name: "relative path with column",
			text: "src/util.rs:3:14: warning: unused import",
			want: Location{Valid: true, Filename: "src/util.rs", Line: 3, Column: 14},
		},
		{
			name: "include chain",
			text: "In file included from /usr/include/stdio.h:27,",
			want: Location{Valid: true, Filename: "/usr/include/stdio.h", Line: 27},
		},
		{
			name: "rustc arrow",
			text: "  --> src/main.rs:5:9",
			want: Location{Valid: true, Filename: "src/main.rs", Line: 5, Column: 9},
		},
		{
			name: "msvc parentheses",
			text: `src\main.c(12,5): error C2065: 'x': undeclared identifier`,
			want: Location{Valid: true, Filename: `src\main.c`, Line: 12, Column: 5},
		},
		{
			name: "python traceback",
			text: `  File "app/views.py", line 88, in index`,
			want: Location{Valid: true, Filename: "app/views.py", Line: 88},
		},
		{
			name: "line at end of text",
			text: "lib/a.c:9",
			want: Location{Valid: true, Filename: "lib/a.c", Line: 9},
		},
		{
			name: "make failure has no location",
			text: "make: *** [all] Error 2",
			want: Location{},
		},
		{
			name: "timestamp is not a location",
			text: "12:34:56 starting build",
			want: Location{},
		},
		{
			name: "zero line is rejected",
			text: "a.c:0: error: bad",
			want: Location{},
		},
		{
			name: "plain text",
			text: "Compiling foo v0.1.0",
			want: Location{},
		},
		{
			name: "empty",
			text: "",
			want: Location{},
		},
	}

	var p Parser
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Parse(tt.text); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Severity
	}{
		{"/a/b.c:42:7: error: x", SeverityError},
		{"/a/b.c:42:7: fatal error: y.h: No such file", SeverityError},
		{"src/a.rs:3:14: warning: unused import", SeverityWarning},
		{"warning: 2 warnings emitted", SeverityWarning},
		{"a.c:1:1: error: unused variable [-Werror,-Wunused-variable] warning", SeverityError},
		{"./main.go:12:2: undefined: y", SeverityError},
		{"a.c:4:1: note: previous definition is here", SeverityNone},
		{"make: *** [all] Error 2", SeverityError},
		{"--- FAIL: TestThing (0.00s)", SeverityError},
		{"panic: runtime error: index out of range", SeverityError},
		{"gcc -Werror -c a.c", SeverityNone},
		{"compiling error_handler.c", SeverityNone},
		{"0 errors", SeverityNone},
		{"Build finished", SeverityNone},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityNone, "none"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
