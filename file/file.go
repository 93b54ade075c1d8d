package file

import (
	"github.com/jsphweid/melowave/model"
)

// CreateFileNumMap numbers songs in the order they are listed.
func CreateFileNumMap(paths []string) model.SongNumToPath {
	res := make(model.SongNumToPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}
