package containers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvist-ml/kvist/containers"
)

func TestVectorPushPop(t *testing.T) {
	var v containers.Vector[int]
	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)
	require.Equal(t, 3, v.Len())

	val, err := v.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 3, val)
	assert.Equal(t, []int{1, 2}, v.Values())
}

func TestVectorPopEmpty(t *testing.T) {
	var v containers.Vector[int]
	_, err := v.PopBack()
	assert.Error(t, err)
}

func TestVectorInsertRemove(t *testing.T) {
	v := containers.NewVector(1, 3)

	require.NoError(t, v.Insert(1, 2))
	assert.Equal(t, []int{1, 2, 3}, v.Values())

	// Insert at Len() appends.
	require.NoError(t, v.Insert(3, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, v.Values())

	assert.Error(t, v.Insert(9, 0))

	require.NoError(t, v.RemoveAt(0))
	assert.Equal(t, []int{2, 3, 4}, v.Values())
	assert.Error(t, v.RemoveAt(3))
}

func TestVectorSetAt(t *testing.T) {
	v := containers.NewVector("a", "b")
	require.NoError(t, v.Set(1, "c"))

	got, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, "c", got)

	_, err = v.At(2)
	assert.Error(t, err)
}

func TestVectorClear(t *testing.T) {
	v := containers.NewVector(1, 2, 3)
	v.Clear()
	assert.Zero(t, v.Len())
	v.Clear()
	assert.Zero(t, v.Len())
}
