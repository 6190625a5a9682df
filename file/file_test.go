package file

import (
	"testing"

	"github.com/jsphweid/midiroll/model"
	"github.com/stretchr/testify/assert"
)

func TestCreateFileNumMapIsStable(t *testing.T) {
	paths := []string{"c.mid", "a.mid", "b.mid"}
	m := CreateFileNumMap(paths)

	assert.Equal(t, model.FileNumToMidiPath{0: "a.mid", 1: "b.mid", 2: "c.mid"}, m)
	assert.Equal(t, []string{"c.mid", "a.mid", "b.mid"}, paths)
}
