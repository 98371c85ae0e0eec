package main

import (
	"reflect"
	"testing"
)

func TestExpandTaskShortcut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"taskplane"},
			want: []string{"taskplane"},
		},
		{
			name: "bare task id",
			in:   []string{"taskplane", "task-abc123de"},
			want: []string{"taskplane", "tasks", "show", "task-abc123de"},
		},
		{
			name: "task id after dir flag and value",
			in:   []string{"taskplane", "--dir", "./tmp-test-ws", "task-abc123de"},
			want: []string{"taskplane", "--dir", "./tmp-test-ws", "tasks", "show", "task-abc123de"},
		},
		{
			name: "task id after dir equals flag",
			in:   []string{"taskplane", "--dir=./tmp-test-ws", "task-abc123de"},
			want: []string{"taskplane", "--dir=./tmp-test-ws", "tasks", "show", "task-abc123de"},
		},
		{
			name: "task id after pretty flag",
			in:   []string{"taskplane", "--pretty", "task-abc123de"},
			want: []string{"taskplane", "--pretty", "tasks", "show", "task-abc123de"},
		},
		{
			name: "task id after double dash",
			in:   []string{"taskplane", "--dir", "./tmp-test-ws", "--", "task-abc123de"},
			want: []string{"taskplane", "--dir", "./tmp-test-ws", "--", "tasks", "show", "task-abc123de"},
		},
		{
			name: "explicit command untouched",
			in:   []string{"taskplane", "tasks", "show", "task-abc123de"},
			want: []string{"taskplane", "tasks", "show", "task-abc123de"},
		},
		{
			name: "unknown word untouched",
			in:   []string{"taskplane", "wat"},
			want: []string{"taskplane", "wat"},
		},
		{
			name: "unknown flag stops the scan",
			in:   []string{"taskplane", "--verbose", "task-abc123de"},
			want: []string{"taskplane", "--verbose", "task-abc123de"},
		},
		{
			name: "bare task prefix untouched",
			in:   []string{"taskplane", "task-"},
			want: []string{"taskplane", "task-"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := expandTaskShortcut(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expandTaskShortcut:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
