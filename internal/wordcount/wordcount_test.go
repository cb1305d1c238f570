package wordcount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	got := Count([]string{"pear", "apple", "pear", "Pear", "apple", "pear"})

	assert.Equal(t, []Entry{
		{Word: "pear", Count: 3},
		{Word: "apple", Count: 2},
		{Word: "Pear", Count: 1},
	}, got)
}

func TestCount_Empty(t *testing.T) {
	assert.Empty(t, Count(nil))
}

func TestCounter_EntriesIsACopy(t *testing.T) {
	var c Counter
	c.Add("a")
	entries := c.Entries()
	entries[0].Count = 100

	assert.Equal(t, 1, c.Entries()[0].Count)
	assert.Equal(t, 1, c.Len())
}

func TestEntryString(t *testing.T) {
	assert.Equal(t, "Word: hello, Count: 4", Entry{Word: "hello", Count: 4}.String())
}
