package game

import (
	"fmt"
	"reflect"
	"testing"
)

func TestMessageLogEvictsOldest(t *testing.T) {
	l := NewMessageLog(3)
	for i := 1; i <= 5; i++ {
		l.Add(fmt.Sprintf("msg %d", i), MsgInfo)
	}

	got := l.Recent(10)
	want := []Message{{"msg 3", MsgInfo}, {"msg 4", MsgInfo}, {"msg 5", MsgInfo}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recent = %+v, want %+v", got, want)
	}
	if got := l.Recent(1); len(got) != 1 || got[0].Text != "msg 5" {
		t.Errorf("Recent(1) = %+v", got)
	}
}

func TestMessageLogWrapsLongText(t *testing.T) {
	l := NewMessageLog(10)
	l.Add("The oceans are boiling and the continents are cracking under a sun that fills half the sky.", MsgCritical)

	if len(l.Messages) < 2 {
		t.Fatalf("long message not wrapped: %+v", l.Messages)
	}
	for _, m := range l.Messages {
		if len(m.Text) > 55 {
			t.Errorf("line %q longer than 55", m.Text)
		}
		if m.Priority != MsgCritical {
			t.Errorf("wrapped line lost its priority: %+v", m)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"one two three four", 9, []string{"one two", "three", "four"}},
		{"   ", 1, []string{""}},
		{"supercalifragilistic word", 5, []string{"supercalifragilistic", "word"}},
	}
	for _, tt := range tests {
		if got := wrapText(tt.in, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("wrapText(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
