package setflag_test

import (
	"testing"

	"github.com/avlowe/lineup/setflag"
	"github.com/stretchr/testify/assert"
)

func TestSetPreservesOrder(t *testing.T) {
	sf := setflag.New("a", "b", "c")
	assert.NoError(t, sf.Set("c, a"))
	assert.NoError(t, sf.Set("b"))
	assert.Equal(t, []string{"c", "a", "b"}, sf.List())
}

func TestSetRejectsUnknown(t *testing.T) {
	sf := setflag.New("a", "b")
	assert.Error(t, sf.Set("a,z"))
}

func TestSetIgnoresDuplicates(t *testing.T) {
	sf := setflag.New("a", "b")
	assert.NoError(t, sf.Set("a,a,b"))
	assert.Equal(t, []string{"a", "b"}, sf.List())
}
