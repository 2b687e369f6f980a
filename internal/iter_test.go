package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefinesConcat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]string{"A": "1"}
	b := map[string]string{"B": "2", "C": "3"}

	all := maps.Collect(DefinesConcat(maps.All(a), maps.All(b)))
	assert.Equal(map[string]string{"A": "1", "B": "2", "C": "3"}, all)

	var count int
	for range DefinesConcat(maps.All(a), maps.All(b)) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestDefinesSorted(t *testing.T) {
	assert := assert.New(t)

	var names []string
	for name := range DefinesSorted(map[string]string{"Z": "", "M": "", "A": ""}) {
		names = append(names, name)
	}
	assert.Equal([]string{"A", "M", "Z"}, names)
}
