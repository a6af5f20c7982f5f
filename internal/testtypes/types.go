// Package testtypes provides payload types shared by tests across packages.
package testtypes

// Message is a representative payload with nested and reference fields,
// used for round-trip tests.
type Message struct {
	ID     string            `json:"id" msgpack:"id"`
	Seq    int64             `json:"seq" msgpack:"seq"`
	Tags   []string          `json:"tags" msgpack:"tags"`
	Attrs  map[string]string `json:"attrs" msgpack:"attrs"`
	Nested *Detail           `json:"nested,omitempty" msgpack:"nested,omitempty"`
}

// Detail is a nested payload component of [Message].
type Detail struct {
	Kind  string  `json:"kind" msgpack:"kind"`
	Score float64 `json:"score" msgpack:"score"`
}

// SampleMessage returns a populated Message for round-trip tests.
func SampleMessage() *Message {
	return &Message{
		ID:    "msg-42",
		Seq:   42,
		Tags:  []string{"alpha", "beta"},
		Attrs: map[string]string{"origin": "test"},
		Nested: &Detail{
			Kind:  "detail",
			Score: 0.75,
		},
	}
}
