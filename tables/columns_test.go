package tables

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/pricebook/model"
)

func TestNearest(t *testing.T) {
	tests := []struct {
		name    string
		anchors []float64
		x       float64
		want    int
	}{
		{"exact", []float64{10, 20, 30}, 20, 1},
		{"tie goes to lowest index", []float64{10, 20}, 15, 0},
		{"three way tie", []float64{10, 20, 10}, 15, 0},
		{"duplicate anchors", []float64{5, 40, 40}, 41, 1},
		{"left of everything", []float64{10, 20}, -100, 0},
		{"right of everything", []float64{10, 20}, 1e6, 1},
		{"unsorted", []float64{300, 100, 200}, 190, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Nearest(tt.anchors, tt.x)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := Nearest(nil, 1)
	assert.False(t, ok)
}

func TestColumnsObserve(t *testing.T) {
	var c Columns
	assert.False(t, c.Started())

	// bold header cells have no leading text
	c.Observe(model.Coordinate{X: 400, Y: 90}, false)
	assert.False(t, c.Started())
	assert.Empty(t, c.Anchors())

	c.Observe(model.Coordinate{X: 10, Y: 100}, true)
	c.Observe(model.Coordinate{X: 50, Y: 100}, true)
	c.Observe(model.Coordinate{X: 90, Y: 100}, false)
	c.Observe(model.Coordinate{X: 50, Y: 120}, true)

	y, ok := c.FirstRowY()
	require.True(t, ok)
	assert.Equal(t, 100.0, y)
	assert.Equal(t, []float64{10, 50, 90}, c.Anchors())

	i, ok := c.Assign(85)
	require.True(t, ok)
	assert.Equal(t, 2, i)

	c.Reset()
	assert.False(t, c.Started())
	assert.Empty(t, c.Anchors())
}

func TestRowBuilderFlush(t *testing.T) {
	var b RowBuilder
	var flushed int
	b.OnFlush = func(model.Row) { flushed++ }

	for _, c := range []struct {
		i    int
		text string
	}{
		{0, "1"}, {1, "Milk"}, {4, "$2.00"},
		{0, "2"}, {1, "Bread"}, {3, "1"}, {3, "again"},
		{5, "$9.00"},
	} {
		require.NoError(t, b.Add(c.i, c.text))
	}
	b.Flush()

	rows := b.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, 3, flushed)
	assert.Equal(t, `("1", "Milk", _, _, "$2.00", _)`, rows[0].String())
	assert.Equal(t, `("2", "Bread", _, "1", _, _)`, rows[1].String())
	assert.Equal(t, `(_, _, _, "again", _, "$9.00")`, rows[2].String())
	for _, r := range rows {
		assert.Len(t, r.Cells(), model.RowColumns)
	}
}

func TestRowBuilderEndTable(t *testing.T) {
	var b RowBuilder
	require.NoError(t, b.Add(3, "first"))
	b.EndTable()
	// prev is reset, so column 1 continues a fresh row rather than flushing
	require.NoError(t, b.Add(1, "second"))
	require.NoError(t, b.Add(2, "third"))
	b.EndTable()
	b.EndTable()

	rows := b.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "second", *rows[1].Description)
	assert.Equal(t, "third", *rows[1].Ordered)
}

func TestRowBuilderColumnOutOfRange(t *testing.T) {
	var b RowBuilder
	err := b.Add(6, "extra")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrFormat))

	var ferr *model.FormatError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "extra", ferr.Input)
	assert.Contains(t, ferr.Pattern, "6")
}

func TestRowBuilderRejectedCellKeepsRow(t *testing.T) {
	var b RowBuilder
	require.NoError(t, b.Add(0, "1"))
	require.NoError(t, b.Add(1, "Milk"))

	// a rejected cell must neither flush nor touch the row in progress
	err := b.Add(-1, "stray")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrFormat))
	assert.Empty(t, b.Rows())

	require.NoError(t, b.Add(4, "$3.10"))
	b.Flush()
	require.Len(t, b.Rows(), 1)
	assert.Equal(t, `("1", "Milk", _, _, "$3.10", _)`, b.Rows()[0].String())
}
