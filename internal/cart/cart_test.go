package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	c, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.True(t, c.Empty())
	assert.Equal(t, "0.00", c.Total().StringFixed(2))
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("not json"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestCart_SaveAndReload(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(dir)
	require.NoError(t, err)

	c.Add(Line{ProductID: "p1", Price: 10.5, Quantity: 2})
	c.Add(Line{ProductID: "p2", Price: 3, Quantity: 1})
	require.NoError(t, c.Save())

	reloaded, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, reloaded.Lines, 2)
	assert.Equal(t, c.Lines, reloaded.Lines)
}

func TestCart_AddMergesSameProduct(t *testing.T) {
	c := &Cart{}
	c.Add(Line{ProductID: "p1", Price: 10.5, Quantity: 2})
	c.Add(Line{ProductID: "p1", Price: 10.5, Quantity: 3})

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.Lines[0].Quantity)
}

func TestCart_Total(t *testing.T) {
	c := &Cart{}
	c.Add(Line{ProductID: "p1", Price: 10.5, Quantity: 2})
	c.Add(Line{ProductID: "p2", Price: 3, Quantity: 1})

	assert.Equal(t, "24.00", c.Total().StringFixed(2))
	assert.Equal(t, 24.0, c.SubmissionTotal())
}

func TestCart_Total_NoFloatDrift(t *testing.T) {
	// 0.1 * 3 accumulates error in float arithmetic.
	c := &Cart{}
	c.Add(Line{ProductID: "p1", Price: 0.1, Quantity: 3})

	assert.Equal(t, "0.30", c.Total().StringFixed(2))
	assert.Equal(t, 0.3, c.SubmissionTotal())
}

func TestCart_Flatten(t *testing.T) {
	c := &Cart{}
	c.Add(Line{ProductID: "p1", Price: 10.5, Quantity: 2})
	c.Add(Line{ProductID: "p2", Price: 3, Quantity: 1})

	assert.Equal(t, []string{"p1", "p1", "p2"}, c.Flatten())
}

func TestCart_Clear(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(dir)
	require.NoError(t, err)
	c.Add(Line{ProductID: "p1", Price: 1, Quantity: 1})
	require.NoError(t, c.Save())

	require.NoError(t, c.Clear())
	assert.True(t, c.Empty())

	_, err = os.Stat(filepath.Join(dir, FileName))
	assert.True(t, os.IsNotExist(err))

	// Clearing again is a no-op.
	require.NoError(t, c.Clear())
}
