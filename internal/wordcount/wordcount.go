// Package wordcount tallies word occurrences while keeping the order in which
// words were first seen.
package wordcount

import "fmt"

// Entry is the number of occurrences of one word.
type Entry struct {
	Word  string
	Count int
}

// String formats the entry as a report line.
func (e Entry) String() string {
	return fmt.Sprintf("Word: %s, Count: %d", e.Word, e.Count)
}

// Counter accumulates word counts. The zero value is ready to use.
type Counter struct {
	index   map[string]int
	entries []Entry
}

// Add records one occurrence of word. Matching is case-sensitive.
func (c *Counter) Add(word string) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[word]; ok {
		c.entries[i].Count++
		return
	}
	c.index[word] = len(c.entries)
	c.entries = append(c.entries, Entry{Word: word, Count: 1})
}

// Entries returns a copy of the counts in first-seen order.
func (c *Counter) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of distinct words.
func (c *Counter) Len() int {
	return len(c.entries)
}

// Count tallies words in first-seen order.
func Count(words []string) []Entry {
	var c Counter
	for _, w := range words {
		c.Add(w)
	}
	return c.Entries()
}
