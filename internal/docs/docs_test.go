package docs

import (
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	t.Parallel()

	topics := Topics()
	want := map[string]bool{"data-format": false, "workflow": false}
	for _, topic := range topics {
		if _, ok := want[topic]; ok {
			want[topic] = true
		}
	}
	for topic, seen := range want {
		if !seen {
			t.Fatalf("missing topic %q in %v", topic, topics)
		}
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	body, ok := Get("workflow")
	if !ok {
		t.Fatal("workflow topic missing")
	}
	if !strings.Contains(body, "#") {
		t.Fatal("topic body should be markdown")
	}

	if _, ok := Get("WORKFLOW"); !ok {
		t.Fatal("topic lookup should be case-insensitive")
	}
	if _, ok := Get("nope"); ok {
		t.Fatal("unknown topic should miss")
	}
	if _, ok := Get("  "); ok {
		t.Fatal("blank topic should miss")
	}
}

func TestEveryTopicResolves(t *testing.T) {
	t.Parallel()

	topics := Topics()
	if len(topics) == 0 {
		t.Fatal("no embedded topics")
	}
	for _, topic := range topics {
		if _, ok := Get(topic); !ok {
			t.Fatalf("topic %q listed but not readable", topic)
		}
	}
}

func TestGetRejectsPathishNames(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"content/workflow", `content\workflow`, "../docs", "workflow.md"} {
		if _, ok := Get(name); ok {
			t.Fatalf("path-like topic %q should miss", name)
		}
	}
}
