package analytics

import (
	"bytes"
	"encoding/json"
)

// GroupCount counts occurrences per key while remembering first-seen order.
// encoding/json sorts plain map keys, so it marshals itself to keep the
// object's members in insertion order.
type GroupCount struct {
	keys   []string
	counts map[string]int
}

func NewGroupCount() *GroupCount {
	return &GroupCount{counts: map[string]int{}}
}

// Add increments the count for key, registering it on first sight.
func (g *GroupCount) Add(key string) {
	if _, ok := g.counts[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.counts[key]++
}

// Keys returns the keys in first-seen order.
func (g *GroupCount) Keys() []string {
	return g.keys
}

// Get returns the count for key (0 when unseen).
func (g *GroupCount) Get(key string) int {
	return g.counts[key]
}

// Len returns the number of distinct keys.
func (g *GroupCount) Len() int {
	return len(g.keys)
}

// MarshalJSON emits a JSON object with members in first-seen order.
func (g *GroupCount) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		count, err := json.Marshal(g.counts[key])
		if err != nil {
			return nil, err
		}
		buf.Write(count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores counts from a JSON object. Insertion order follows
// the document order of the object's members.
func (g *GroupCount) UnmarshalJSON(data []byte) error {
	g.keys = nil
	g.counts = map[string]int{}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // opening brace
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		var count int
		if err := dec.Decode(&count); err != nil {
			return err
		}
		g.keys = append(g.keys, key)
		g.counts[key] = count
	}
	_, err := dec.Token() // closing brace
	return err
}
