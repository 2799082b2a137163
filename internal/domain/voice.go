package domain

import (
	"bytes"
	"encoding/json"
	"sort"
)

// ResponseType tags which variant of Response is populated.
type ResponseType string

const (
	ResponseAction ResponseType = "action"
	ResponseSpeech ResponseType = "speech"
)

// Action names understood by the ArkTech front-end.
const (
	ActionOpenApp  = "open_app"
	ActionSetAlarm = "set_alarm"
)

// Action field keys.
const (
	FieldApp  = "app"
	FieldTime = "time"
)

// AskRequest is the inbound body of POST /ask.
type AskRequest struct {
	Text string `json:"text"`
}

// Response is either an Action (Name + Fields) or Speech (Text), never both.
type Response struct {
	Type   ResponseType
	Name   string
	Fields map[string]string
	Text   string
}

func NewAction(name string, fields map[string]string) *Response {
	return &Response{Type: ResponseAction, Name: name, Fields: fields}
}

func NewSpeech(text string) *Response {
	return &Response{Type: ResponseSpeech, Text: text}
}

func (r Response) IsAction() bool { return r.Type == ResponseAction }

// MarshalJSON flattens the variant into the wire shape:
//
//	{"type":"action","name":"open_app","app":"Spotify"}
//	{"type":"speech","text":"..."}
func (r Response) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeField(&buf, "type", string(r.Type), true); err != nil {
		return nil, err
	}

	if r.Type == ResponseSpeech {
		if err := writeField(&buf, "text", r.Text, false); err != nil {
			return nil, err
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}

	if err := writeField(&buf, "name", r.Name, false); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		if k == "type" || k == "name" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := writeField(&buf, k, r.Fields[k], false); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, key, value string, first bool) error {
	if !first {
		buf.WriteByte(',')
	}
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// Intent is the routing decision for one utterance.
type Intent struct {
	Name  string            `json:"name"`
	Slots map[string]string `json:"slots,omitempty"`
}

// IntentChat marks an utterance that is forwarded to the LLM provider.
const IntentChat = "chat"

// ChatMessage is one turn of an outbound chat-completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)
