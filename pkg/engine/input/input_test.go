package input

import (
	"context"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Intent
	}{
		{"start", Intent{Action: ActionStart}},
		{"  GO  Potion Room ", Intent{Action: ActionGo, Arg: "Potion Room"}},
		{"riddle Shadow", Intent{Action: ActionRiddle, Arg: "Shadow"}},
		{"code 7392", Intent{Action: ActionCode, Arg: "7392"}},
		{"? map", Intent{Action: ActionHint, Arg: "map"}},
		{"runes", Intent{Action: ActionSubmitRunes}},
		{"dance wildly", Intent{Action: ActionNone, Arg: "wildly"}},
		{"", Intent{Action: ActionNone}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := Parse(tt.line); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestNewDebouncedInput(t *testing.T) {
	got := NewDebouncedInput(RawInput{Code: "  TAKE  Raven Feather \r"})
	want := DebouncedInput{Verb: "take", Arg: "Raven Feather"}
	if got != want {
		t.Errorf("NewDebouncedInput = %+v, want %+v", got, want)
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	got := GetBindingsByAction()[ActionQuit]
	want := []string{"exit", "q", "quit"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("bindings for quit = %v, want %v", got, want)
	}
}

func TestActionName_EveryBoundAction(t *testing.T) {
	for act := range GetBindingsByAction() {
		if ActionName(act) == "None" {
			t.Errorf("ActionName(%d) = None, want a name", act)
		}
	}
}

func TestLines(t *testing.T) {
	lines, errs := Lines(context.Background(), strings.NewReader("start\r\ngo entrance\n"))
	var got []string
	for l := range lines {
		got = append(got, l)
	}
	if strings.Join(got, "|") != "start|go entrance" {
		t.Errorf("lines = %q, want [start go entrance]", got)
	}
	select {
	case err := <-errs:
		t.Errorf("unexpected error: %v", err)
	default:
	}
}
