package strip

import (
	"fmt"
	"strings"
	"testing"
)

func TestRemoveComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "clean_input_unchanged",
			in:   "int main(void) { return 0; }\n",
			want: "int main(void) { return 0; }\n",
		},
		{
			name: "empty_input",
			in:   "",
			want: "",
		},
		{
			name: "line_comment_stripped_to_newline",
			in:   "x; // comment\ny;",
			want: "x; \ny;",
		},
		{
			name: "line_comment_at_end_without_newline",
			in:   "x; // trailing",
			want: "x; ",
		},
		{
			name: "block_comment_spanning_lines",
			in:   "a/*\nmulti\nline*/b",
			want: "ab",
		},
		{
			name: "block_comment_within_line",
			in:   "a/* gone */b",
			want: "ab",
		},
		{
			name: "non_comment_slash_preserved",
			in:   "a/b",
			want: "a/b",
		},
		{
			name: "slash_at_end_of_input_dropped",
			in:   "x/",
			want: "x",
		},
		{
			name: "comment_markers_inside_double_quotes",
			in:   `"http://example.com"`,
			want: `"http://example.com"`,
		},
		{
			name: "block_marker_inside_double_quotes",
			in:   `"/* not a comment */"`,
			want: `"/* not a comment */"`,
		},
		{
			name: "comment_markers_inside_single_quotes",
			in:   `'// nope'`,
			want: `'// nope'`,
		},
		{
			name: "escaped_double_quote_does_not_end_literal",
			in:   "\"a\\\"b\"",
			want: "\"a\\\"b\"",
		},
		{
			name: "escaped_single_quote_does_not_end_literal",
			in:   `'a\'b'`,
			want: `'a\'b'`,
		},
		{
			name: "escaped_backslash_then_comment",
			in:   "\"a\\\\\" // gone",
			want: "\"a\\\\\" ",
		},
		{
			name: "unterminated_block_comment",
			in:   "x/*never closes",
			want: "x",
		},
		{
			name: "unterminated_double_quote_runs_to_end",
			in:   `"no closing // quote`,
			want: `"no closing // quote`,
		},
		{
			name: "line_marker_inside_block_comment",
			in:   "/* // not a line comment */x",
			want: "x",
		},
		{
			name: "block_marker_inside_line_comment",
			in:   "// /* still a line comment\ny",
			want: "\ny",
		},
		{
			name: "slash_before_string",
			in:   `a/"b"`,
			want: `a/"b"`,
		},
		{
			name: "division_between_identifiers",
			in:   "a = b / c / d;\n",
			want: "a = b / c / d;\n",
		},
		{
			name: "adjacent_comments",
			in:   "a/* one *//* two */b",
			want: "ab",
		},
		{
			name: "newline_inside_double_quotes_kept",
			in:   "\"first\nsecond\"",
			want: "\"first\nsecond\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveComments(tt.in)
			if got != tt.want {
				t.Fatalf("output mismatch:\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestFilterReuse(t *testing.T) {
	var f Filter

	first := f.RemoveComments("a // one\n")
	if first != "a \n" {
		t.Fatalf("first call: got %q, want %q", first, "a \n")
	}

	// State must reset between calls; the dangling block comment from the
	// second input must not leak into the third.
	second := f.RemoveComments("b /* never closed")
	if second != "b " {
		t.Fatalf("second call: got %q, want %q", second, "b ")
	}

	third := f.RemoveComments("c")
	if third != "c" {
		t.Fatalf("third call: got %q, want %q", third, "c")
	}
}

func TestFilterTrace(t *testing.T) {
	var transitions []string
	f := Filter{
		Trace: func(from, to State) {
			transitions = append(transitions, fmt.Sprintf("%s->%s", from, to))
		},
	}

	f.RemoveComments("x/*y*/z")

	want := []string{
		"Initial->NormalText",
		"NormalText->StartComment",
		"StartComment->BlockComment",
		"BlockComment->EndBlockComment",
		"EndBlockComment->NormalText",
		"NormalText->Done",
	}
	if strings.Join(transitions, ",") != strings.Join(want, ",") {
		t.Fatalf("transition mismatch:\n got: %v\nwant: %v", transitions, want)
	}
}

func TestFilterBehaviorCache(t *testing.T) {
	var f Filter

	// Exercises every state except Done's behavior lookup.
	f.RemoveComments("a\"b\\\"\"'c\\''/*d*/ //e\nf/g")

	if len(f.behaviors) > int(Done)+1 {
		t.Fatalf("behavior cache holds %d entries, want at most %d", len(f.behaviors), int(Done)+1)
	}
	for s := range f.behaviors {
		if s < Initial || s > Done {
			t.Fatalf("behavior cached for unknown state %v", s)
		}
	}

	// A second run must not grow the cache.
	before := len(f.behaviors)
	f.RemoveComments("plain text")
	if len(f.behaviors) != before {
		t.Fatalf("cache grew from %d to %d entries on reuse", before, len(f.behaviors))
	}
}

func TestStateString(t *testing.T) {
	if got := NormalText.String(); got != "NormalText" {
		t.Fatalf("got %q, want %q", got, "NormalText")
	}
	if got := State(99).String(); got != "State(99)" {
		t.Fatalf("got %q, want %q", got, "State(99)")
	}
}
