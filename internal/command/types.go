package command

import (
	"encoding/json"
	"fmt"
)

// MessageType represents the different kinds of commands a caller can issue
type MessageType string

const (
	MessageTypeNew     MessageType = "new"
	MessageTypeMove    MessageType = "move"
	MessageTypeEnter   MessageType = "enter"
	MessageTypeState   MessageType = "state"
	MessageTypeBoard   MessageType = "board"
	MessageTypeHistory MessageType = "history"
	MessageTypeGames   MessageType = "games"
	MessageTypeUse     MessageType = "use"
	MessageTypeEnd     MessageType = "end"
	MessageTypeHelp    MessageType = "help"
	MessageTypeQuit    MessageType = "quit"
)

// Message represents a command in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type MovePayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type EnterPayload struct {
	Kind   string `json:"kind"`
	Square string `json:"square"`
	Color  string `json:"color,omitempty"`
}

type GamePayload struct {
	GameID string `json:"gameId"`
}

func NewMessage(t MessageType, payload any) (Message, error) {
	msg := Message{Type: t}
	if payload == nil {
		return msg, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("encode %s payload: %w", t, err)
	}
	msg.Payload = raw
	return msg, nil
}

// DecodePayload unmarshals msg.Payload into a value of type T.
func DecodePayload[T any](msg Message) (T, error) {
	var v T
	if len(msg.Payload) == 0 {
		return v, fmt.Errorf("%w: %s has no payload", ErrBadCommand, msg.Type)
	}
	if err := json.Unmarshal(msg.Payload, &v); err != nil {
		return v, fmt.Errorf("decode %s payload: %w", msg.Type, err)
	}
	return v, nil
}
