// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/uncorr/z"
)

func TestVectorParse(t *testing.T) {
	v, err := Parse(z.Binary, "0001")
	require.NoError(t, err)
	assert.Equal(t, 2, v.Rank)
	assert.EqualValues(t, 8, v.Code())
	assert.Equal(t, "0001", v.String())
	assert.EqualValues(t, 1, v.At([]int8{1, 1}))
	assert.EqualValues(t, 0, v.At([]int8{1, 0}))

	w, err := Parse(z.Ternary, "000012021000120000000000201")
	require.NoError(t, err)
	assert.Equal(t, 3, w.Rank)
	assert.Equal(t, "000012021000120000000000201", w.String())

	for _, bad := range []string{"", "012", "0002", "00x0"} {
		_, err := Parse(z.Binary, bad)
		assert.Error(t, err, "%q", bad)
	}
	_, err = Parse(z.Q(4), "0000")
	assert.Error(t, err)
}

func TestVectorArith(t *testing.T) {
	v, err := Parse(z.Ternary, "012210000")
	require.NoError(t, err)
	d := v.Scale(2)
	assert.Equal(t, "021120000", d.String())
	assert.EqualValues(t, 2, d.LeastNonzero())
	assert.True(t, v.Add(d).IsZero())
	assert.True(t, v.Equal(v.Copy()))
	assert.False(t, v.Equal(d))

	c := v.Copy()
	c.F[1] = 0
	assert.EqualValues(t, 1, v.F[1], "copy shares entries")
}

func TestProjections(t *testing.T) {
	assert.Equal(t, []int{1, 2, 4, 8}, Projections(z.Binary, 4))
	assert.Equal(t, []int{1, 2, 3, 6, 9, 18}, Projections(z.Ternary, 3))
	assert.True(t, IsProjection(z.Ternary, 3, 18))
	assert.False(t, IsProjection(z.Ternary, 3, 4))

	shifts := ProjectionShifts(z.Binary, 3)
	require.Len(t, shifts, 8)
	codes := make([]uint64, len(shifts))
	for i, s := range shifts {
		codes[i] = s.Code()
	}
	assert.Equal(t, []uint64{0, 2, 4, 6, 16, 18, 20, 22}, codes)
	assert.Len(t, ProjectionShifts(z.Ternary, 2), 81)
}

func TestMultiplier(t *testing.T) {
	assert.EqualValues(t, 4, Multiplier(z.Binary, 2))
	assert.EqualValues(t, 32, Multiplier(z.Binary, 5))
	assert.EqualValues(t, 2*729, Multiplier(z.Ternary, 3))
}
