package file

import (
	"testing"

	"github.com/jsphweid/melowave/model"
	"github.com/stretchr/testify/assert"
)

func TestCreateFileNumMap(t *testing.T) {
	m := CreateFileNumMap([]string{"a.mid", "b.mid"})
	assert.Equal(t, model.SongNumToPath{0: "a.mid", 1: "b.mid"}, m)
	assert.Empty(t, CreateFileNumMap(nil))
}
