// Package docs holds the embedded help topics behind `taskplane docs`.
package docs

import (
	"embed"
	"sort"
	"strings"
)

//go:embed content/*.md
var content embed.FS

const topicExt = ".md"

// Topics returns the available topic names, sorted.
func Topics() []string {
	entries, err := content.ReadDir("content")
	if err != nil {
		return nil
	}
	topics := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, topicExt) {
			continue
		}
		topics = append(topics, strings.TrimSuffix(name, topicExt))
	}
	sort.Strings(topics)
	return topics
}

// Get returns the markdown body for a topic name as listed by Topics.
// Lookup is case-insensitive. The embedded path is built by plain
// concatenation: embed.FS names are slash-separated on every platform,
// so filepath-style joining would break lookups on Windows.
func Get(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" || strings.ContainsAny(topic, `/\.`) {
		return "", false
	}
	b, err := content.ReadFile("content/" + topic + topicExt)
	if err != nil {
		return "", false
	}
	return string(b), true
}
