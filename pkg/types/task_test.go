package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTask(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Task
		wantErr bool
	}{
		{
			name: "full line",
			line: "1,Buy milk,high,true",
			want: Task{ID: 1, Content: "Buy milk", Priority: PriorityHigh, Checked: true},
		},
		{
			name: "checked as 1",
			line: "2,Call home,low,1",
			want: Task{ID: 2, Content: "Call home", Priority: PriorityLow, Checked: true},
		},
		{
			name: "unchecked",
			line: "3,Pay rent,none,false",
			want: Task{ID: 3, Content: "Pay rent", Priority: PriorityNone, Checked: false},
		},
		{
			name: "content with commas",
			line: "4,Eggs, flour, and sugar,med,false",
			want: Task{ID: 4, Content: "Eggs, flour, and sugar", Priority: PriorityMed, Checked: false},
		},
		{
			name: "missing checked defaults to false",
			line: "5,Walk the dog,high",
			want: Task{ID: 5, Content: "Walk the dog", Priority: PriorityHigh, Checked: false},
		},
		{
			name: "missing priority defaults to med",
			line: "6,Read a book",
			want: Task{ID: 6, Content: "Read a book", Priority: PriorityMed, Checked: false},
		},
		{
			name: "whitespace around fields",
			line: " 7 , Tidy up , low , true ",
			want: Task{ID: 7, Content: "Tidy up", Priority: PriorityLow, Checked: true},
		},
		{name: "malformed id", line: "abc,Nope,med,false", wantErr: true},
		{name: "negative id", line: "-1,Nope,med,false", wantErr: true},
		{name: "missing content", line: "8", wantErr: true},
		{name: "empty line", line: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTask(tt.line)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedLine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskLineRoundTrip(t *testing.T) {
	task := NewTask(42, "Ship the release", PriorityHigh, true)

	line := task.Line()
	assert.Equal(t, "42,Ship the release,high,true", line)

	parsed, err := ParseTask(line)
	require.NoError(t, err)
	assert.Equal(t, task, parsed)
}

func TestTaskCheck(t *testing.T) {
	task := NewTask(1, "A", PriorityMed, false)

	require.NoError(t, task.Check())
	assert.True(t, task.Checked)

	err := task.Check()
	require.ErrorIs(t, err, ErrAlreadyChecked)
	assert.True(t, task.Checked, "failed check must not flip the state")
}

func TestTaskUncheck(t *testing.T) {
	task := NewTask(1, "A", PriorityMed, true)

	require.NoError(t, task.Uncheck())
	assert.False(t, task.Checked)

	err := task.Uncheck()
	require.ErrorIs(t, err, ErrAlreadyUnchecked)
	assert.False(t, task.Checked, "failed uncheck must not flip the state")
}
