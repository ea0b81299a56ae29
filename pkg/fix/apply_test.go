package fix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEdits(t *testing.T) {
	tests := []struct {
		name    string
		content string
		edits   []TextEdit
		want    string
	}{
		{
			name:    "no edits returns content",
			content: "hello",
			edits:   nil,
			want:    "hello",
		},
		{
			name:    "single replacement",
			content: "hello world",
			edits:   []TextEdit{{StartOffset: 6, EndOffset: 11, NewText: "there"}},
			want:    "hello there",
		},
		{
			name:    "insertion",
			content: "ab",
			edits:   []TextEdit{{StartOffset: 1, EndOffset: 1, NewText: "X"}},
			want:    "aXb",
		},
		{
			name:    "deletion",
			content: "trailing  \n",
			edits:   []TextEdit{{StartOffset: 8, EndOffset: 10, NewText: ""}},
			want:    "trailing\n",
		},
		{
			name:    "multiple ordered edits",
			content: "one two three",
			edits: []TextEdit{
				{StartOffset: 0, EndOffset: 3, NewText: "1"},
				{StartOffset: 4, EndOffset: 7, NewText: "2"},
				{StartOffset: 8, EndOffset: 13, NewText: "3"},
			},
			want: "1 2 3",
		},
		{
			name:    "replacement at very end",
			content: "abc",
			edits:   []TextEdit{{StartOffset: 3, EndOffset: 3, NewText: "\n"}},
			want:    "abc\n",
		},
		{
			name:    "growing replacement",
			content: "#Heading\n",
			edits:   []TextEdit{{StartOffset: 1, EndOffset: 1, NewText: " "}},
			want:    "# Heading\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyEdits([]byte(tt.content), tt.edits)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestApplyEdits_DoesNotMutateInput(t *testing.T) {
	content := []byte("hello")
	ApplyEdits(content, []TextEdit{{StartOffset: 0, EndOffset: 5, NewText: "world"}})
	assert.Equal(t, "hello", string(content))
}

func TestApplyEdits_PreparedPipeline(t *testing.T) {
	content := []byte("a  b\tc")

	// Two rules fighting over the same whitespace plus one clean edit.
	edits := []TextEdit{
		{StartOffset: 1, EndOffset: 3, NewText: " ", RuleOrder: 2},
		{StartOffset: 1, EndOffset: 3, NewText: "", RuleOrder: 7},
		{StartOffset: 4, EndOffset: 5, NewText: " ", RuleOrder: 3},
	}

	accepted, skipped := PrepareEdits(edits, len(content))
	assert.Len(t, skipped, 1)

	got := ApplyEdits(content, accepted)
	assert.Equal(t, "a b c", string(got))
}

func TestEditBuilder(t *testing.T) {
	b := NewEditBuilder()
	b.ReplaceRange(0, 2, "X")
	b.Insert(5, "Y")
	b.Delete(7, 9)

	assert.Equal(t, []TextEdit{
		{StartOffset: 0, EndOffset: 2, NewText: "X"},
		{StartOffset: 5, EndOffset: 5, NewText: "Y"},
		{StartOffset: 7, EndOffset: 9, NewText: ""},
	}, b.Edits)
}
