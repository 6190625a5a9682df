package file

import (
	"sort"

	"github.com/jsphweid/midiroll/model"
)

// CreateFileNumMap numbers paths in sorted order so file numbers are
// stable across runs over the same directory.
func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	res := make(model.FileNumToMidiPath)
	for i, v := range sorted {
		res[uint32(i)] = v
	}
	return res
}
