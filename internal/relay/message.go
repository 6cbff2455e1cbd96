package relay

import "encoding/json"

// TypeLoad is the only message type the relay understands today.
const TypeLoad = "load"

// Message is the sync payload broadcast between peers. A load message tells
// every other viewer to load the named structure; the receiver must not
// re-broadcast it (loop prevention is the viewer's job).
type Message struct {
	Type  string `json:"type"`
	PDBID string `json:"pdbId"`
}

// LoadMessage encodes a load event for the given structure id.
func LoadMessage(id string) ([]byte, error) {
	return json.Marshal(Message{Type: TypeLoad, PDBID: id})
}

// Decode parses a raw peer message.
func Decode(raw []byte) (Message, error) {
	var m Message
	err := json.Unmarshal(raw, &m)
	return m, err
}
