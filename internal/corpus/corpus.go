// Package corpus holds the reference answers that student responses are
// scored against, keyed by subject and topic.
package corpus

import (
	"sort"
	"strings"
)

// Corpus maps subject → topic → canonical reference sentences.
type Corpus struct {
	subjects map[string]map[string][]string
}

// New creates a Corpus from a subject/topic/sentences mapping.
// Subject keys are normalized to lowercase.
func New(subjects map[string]map[string][]string) *Corpus {
	normalized := make(map[string]map[string][]string, len(subjects))
	for subject, topics := range subjects {
		normalized[strings.ToLower(subject)] = topics
	}
	return &Corpus{subjects: normalized}
}

// HasSubject reports whether the corpus has references for the subject.
// Matching is case-insensitive.
func (c *Corpus) HasSubject(subject string) bool {
	_, ok := c.subjects[strings.ToLower(subject)]
	return ok
}

// Subjects returns all subject keys in sorted order.
func (c *Corpus) Subjects() []string {
	out := make([]string, 0, len(c.subjects))
	for s := range c.subjects {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Topics returns the topic keys for a subject in sorted order.
func (c *Corpus) Topics(subject string) []string {
	topics, ok := c.subjects[strings.ToLower(subject)]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(topics))
	for t := range topics {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// References returns every reference sentence under the subject, all
// topics flattened. Topics are iterated in sorted order so the result is
// deterministic. Returns nil for an unknown subject.
func (c *Corpus) References(subject string) []string {
	topics, ok := c.subjects[strings.ToLower(subject)]
	if !ok {
		return nil
	}

	var refs []string
	for _, topic := range c.Topics(subject) {
		refs = append(refs, topics[topic]...)
	}
	return refs
}
