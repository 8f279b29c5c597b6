package docs

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics_StartWithTitle parses every embedded topic and checks it opens
// with a level-1 heading, so concatenated topics render as separate sections.
func TestTopics_StartWithTitle(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() returned an unexpected error: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("GetAllTopics() returned no topics")
	}

	parser := goldmark.DefaultParser()
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) returned an unexpected error: %v", topic, err)
		}

		source := []byte(content)
		doc := parser.Parse(text.NewReader(source))

		heading, ok := doc.FirstChild().(*ast.Heading)
		if !ok {
			t.Errorf("topic %q does not start with a heading", topic)
			continue
		}
		if heading.Level != 1 {
			t.Errorf("topic %q starts with a level-%d heading, want level 1", topic, heading.Level)
		}
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic() with an unknown topic should return an error")
	}
}

func TestGetTopic_Star(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) returned an unexpected error: %v", err)
	}
	single, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme) returned an unexpected error: %v", err)
	}
	if len(all) <= len(single) {
		t.Errorf("GetTopic(*) should concatenate all topics, got %d bytes", len(all))
	}
}
