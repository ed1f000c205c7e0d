package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line    string
		want    MessageType
		payload string
	}{
		{"move e2 e4", MessageTypeMove, `{"from":"e2","to":"e4"}`},
		{"  e2   e4 ", MessageTypeMove, `{"from":"e2","to":"e4"}`},
		{"MOVE g1 f3", MessageTypeMove, `{"from":"g1","to":"f3"}`},
		{"enter falcon d1", MessageTypeEnter, `{"kind":"falcon","square":"d1"}`},
		{"enter H e8 black", MessageTypeEnter, `{"kind":"H","square":"e8","color":"black"}`},
		{"use 1234", MessageTypeUse, `{"gameId":"1234"}`},
		{"end", MessageTypeEnd, ""},
		{"end 1234", MessageTypeEnd, `{"gameId":"1234"}`},
		{"new", MessageTypeNew, ""},
		{"board", MessageTypeBoard, ""},
		{"state", MessageTypeState, ""},
		{"history", MessageTypeHistory, ""},
		{"games", MessageTypeGames, ""},
		{"help", MessageTypeHelp, ""},
		{"exit", MessageTypeQuit, ""},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			msg, err := ParseLine(tt.line)
			if err != nil {
				t.Fatalf("ParseLine(%q): %v", tt.line, err)
			}
			if msg.Type != tt.want {
				t.Errorf("Type = %q; want %q", msg.Type, tt.want)
			}
			if string(msg.Payload) != tt.payload {
				t.Errorf("Payload = %s; want %s", msg.Payload, tt.payload)
			}
		})
	}
}

func TestParseLineErrors(t *testing.T) {
	for _, line := range []string{"", "   ", "move e2", "enter falcon", "use", "board now", "castle", "end a b"} {
		if _, err := ParseLine(line); !errors.Is(err, ErrBadCommand) {
			t.Errorf("ParseLine(%q) error = %v; want ErrBadCommand", line, err)
		}
	}
}

func TestDecodePayload(t *testing.T) {
	msg, err := ParseLine("enter hunter f1 white")
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodePayload[EnterPayload](msg)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	want := EnterPayload{Kind: "hunter", Square: "f1", Color: "white"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}

	if _, err := DecodePayload[MovePayload](Message{Type: MessageTypeMove}); !errors.Is(err, ErrBadCommand) {
		t.Errorf("DecodePayload without payload error = %v; want ErrBadCommand", err)
	}
	if _, err := DecodePayload[MovePayload](Message{Type: MessageTypeMove, Payload: []byte(`{"from":1}`)}); err == nil {
		t.Error("DecodePayload accepted a mistyped payload")
	}
}

func TestLoadScript(t *testing.T) {
	const doc = `
name: scholar
steps:
  - cmd: move e2 e4
  - cmd: e7 e5
  - cmd: e4 e5
    want: rejected
expect_state: InProgress
`
	s, err := LoadScript(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	want := &Script{
		Name: "scholar",
		Steps: []ScriptStep{
			{Command: "move e2 e4"},
			{Command: "e7 e5"},
			{Command: "e4 e5", Want: ExpectRejected},
		},
		ExpectState: "InProgress",
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadScriptInvalid(t *testing.T) {
	tests := map[string]string{
		"empty":         "",
		"no steps":      "name: x\n",
		"unknown field": "name: x\nsteps:\n  - cmd: new\n    expect: accepted\n",
		"bad command":   "steps:\n  - cmd: castle long\n",
		"bad want":      "steps:\n  - cmd: new\n    want: maybe\n",
		"bad state":     "steps:\n  - cmd: new\nexpect_state: Draw\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadScript(strings.NewReader(doc)); err == nil {
				t.Errorf("LoadScript accepted %q", doc)
			}
		})
	}
}
