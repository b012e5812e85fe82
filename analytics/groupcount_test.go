package analytics

import (
	"encoding/json"
	"testing"
)

func TestGroupCountMarshalKeepsInsertionOrder(t *testing.T) {
	g := NewGroupCount()
	for _, k := range []string{"zeta", "alpha", "zeta", "mid"} {
		g.Add(k)
	}

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"zeta":2,"alpha":1,"mid":1}`; string(data) != want {
		t.Fatalf("marshaled %s, want %s", data, want)
	}
}

func TestGroupCountRoundTrip(t *testing.T) {
	g := NewGroupCount()
	g.Add("b")
	g.Add("a")
	g.Add("b")

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	restored := NewGroupCount()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored.Len() != 2 || restored.Get("b") != 2 || restored.Get("a") != 1 {
		t.Fatalf("round trip lost counts: %v", restored.counts)
	}
	if keys := restored.Keys(); keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("round trip lost order: %v", keys)
	}
}

func TestGroupCountEscapesKeys(t *testing.T) {
	g := NewGroupCount()
	g.Add(`"quoted"`)

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]int
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded[`"quoted"`] != 1 {
		t.Fatalf("key lost in %s", data)
	}
}
