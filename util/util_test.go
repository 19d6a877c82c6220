package util

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModIsFloored(t *testing.T) {
	cases := []struct{ a, n, want int }{
		{0, 12, 0},
		{13, 12, 1},
		{-1, 12, 11},
		{-12, 12, 0},
		{-13, 12, 11},
	}

	for _, c := range cases {
		name := fmt.Sprintf("%v mod %v", c.a, c.n)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, Mod(c.a, c.n))
		})
	}
}

func TestFloorDiv(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(4, FloorDiv(59, 12))
	assert.Equal(5, FloorDiv(60, 12))
	assert.Equal(-1, FloorDiv(-1, 12))
	assert.Equal(-1, FloorDiv(-12, 12))
	assert.Equal(-2, FloorDiv(-13, 12))
}

func TestRotate(t *testing.T) {
	steps := []int{2, 2, 1, 2, 2, 2, 1}

	assert := assert.New(t)
	assert.Equal([]int{2, 1, 2, 2, 2, 1, 2}, RotateLeft(steps, 1))
	assert.Equal([]int{2, 1, 2, 2, 1, 2, 2}, RotateLeft(steps, -2))
	assert.Equal(steps, RotateLeft(steps, len(steps)))
	assert.Equal([]int{2, 2, 1, 2, 2, 2, 1}, steps, "input must not be mutated")
	assert.Empty(RotateLeft([]int{}, 3))
}

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Clamp(-3, 0, 127))
	assert.Equal(127, Clamp(200, 0, 127))
	assert.Equal(60, Clamp(60, 0, 127))
}

func TestGetKeysIsSorted(t *testing.T) {
	assert.Equal(t, []uint8{48, 52, 55}, GetKeys(map[uint8]bool{55: true, 48: true, 52: true}))
	assert.Empty(t, GetKeys(map[int]string{}))
}
