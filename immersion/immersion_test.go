package immersion_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dahu/gridgraph"
	"github.com/katalvlaran/dahu/immersion"
)

func TestImmerse_Errors(t *testing.T) {
	_, _, err := immersion.Immerse[uint8](nil)
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, _, err = immersion.Immerse(&gridgraph.Grid[uint16]{})
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

// TestImmerse_SinglePixel: a 1×1 image immerses to itself.
func TestImmerse_SinglePixel(t *testing.T) {
	img, err := gridgraph.FromRows([][]uint8{{5}})
	require.NoError(t, err)

	m, M, err := immersion.Immerse(img)
	require.NoError(t, err)
	assert.Equal(t, []uint8{5}, m.Data)
	assert.Equal(t, []uint8{5}, M.Data)
}

// TestImmerse_Row covers 1-faces between horizontally adjacent pixels.
func TestImmerse_Row(t *testing.T) {
	img, err := gridgraph.FromRows([][]uint8{{1, 1, 9}})
	require.NoError(t, err)

	m, M, err := immersion.Immerse(img)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Height)
	assert.Equal(t, 5, m.Width)
	assert.Equal(t, []uint8{1, 1, 1, 1, 9}, m.Data)
	assert.Equal(t, []uint8{1, 1, 1, 9, 9}, M.Data)
}

// TestImmerse_Square checks every face kind on a 2×2 image.
func TestImmerse_Square(t *testing.T) {
	img, err := gridgraph.FromRows([][]uint16{
		{10, 20},
		{30, 40},
	})
	require.NoError(t, err)

	m, M, err := immersion.Immerse(img)
	require.NoError(t, err)
	assert.Equal(t, [][]uint16{
		{10, 10, 20},
		{10, 10, 20},
		{30, 30, 40},
	}, m.Rows())
	assert.Equal(t, [][]uint16{
		{10, 20, 20},
		{30, 40, 40},
		{30, 40, 40},
	}, M.Rows())
}

// TestImmerse_IntervalInvariant: m ≤ M everywhere, m = M = pixel on 2-faces.
func TestImmerse_IntervalInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rows := make([][]uint8, 9)
	for r := range rows {
		rows[r] = make([]uint8, 13)
		for c := range rows[r] {
			rows[r][c] = uint8(rng.Intn(256))
		}
	}
	img, err := gridgraph.FromRows(rows)
	require.NoError(t, err)
	before := img.Clone()

	m, M, err := immersion.Immerse(img)
	require.NoError(t, err)
	h, w := immersion.Shape(img.Height, img.Width)
	require.Equal(t, h, m.Height)
	require.Equal(t, w, M.Width)

	for i := range m.Data {
		p := m.Coordinate(i)
		require.LessOrEqual(t, m.Data[i], M.Data[i], "m > M at %v", p)
		if gridgraph.IsTwoFace(p) {
			px := rows[p.Row/2][p.Col/2]
			require.Equal(t, px, m.Data[i], "m at 2-face %v", p)
			require.Equal(t, px, M.Data[i], "M at 2-face %v", p)
		}
	}
	assert.Equal(t, before.Data, img.Data, "input must not be mutated")
}

func TestSeedsFromMask(t *testing.T) {
	mask, err := gridgraph.FromRows([][]uint8{
		{0, 1, 0},
		{0, 0, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)

	seeds, err := immersion.SeedsFromMask(mask)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Point{
		{Row: 0, Col: 2},
		{Row: 4, Col: 0},
		{Row: 4, Col: 4},
	}, seeds)
	for _, s := range seeds {
		assert.True(t, gridgraph.IsTwoFace(s))
	}
}

func TestSeedsFromMask_Empty(t *testing.T) {
	mask, err := gridgraph.New[uint8](2, 2)
	require.NoError(t, err)

	seeds, err := immersion.SeedsFromMask(mask)
	require.NoError(t, err)
	assert.NotNil(t, seeds)
	assert.Empty(t, seeds)
}

func TestPixelSeeds(t *testing.T) {
	got := immersion.PixelSeeds(gridgraph.Point{Row: 1, Col: 2}, gridgraph.Point{})
	assert.Equal(t, []gridgraph.Point{{Row: 2, Col: 4}, {Row: 0, Col: 0}}, got)
}

func TestTwoFaces_InvertsImmerse(t *testing.T) {
	img, err := gridgraph.FromRows([][]uint16{
		{3, 1, 4},
		{1, 5, 9},
	})
	require.NoError(t, err)
	m, _, err := immersion.Immerse(img)
	require.NoError(t, err)

	back, err := immersion.TwoFaces(m)
	require.NoError(t, err)
	assert.Equal(t, img.Rows(), back.Rows())
}
