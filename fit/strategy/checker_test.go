package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/fitbench/fit"
)

func checkerSnapshot() fit.List {
	return fit.List{
		{Address: 0, Length: 8},
		{Address: 8, Length: 4},
		{Address: 12, Length: 16},
	}
}

// TestVerify_AcceptsHonestRemoval verifies a correct winner and remainder
// pass.
func TestVerify_AcceptsHonestRemoval(t *testing.T) {
	c := NewChecker(checkerSnapshot(), 3)
	err := c.Verify("scan", fit.Block{Address: 8, Length: 4}, fit.List{
		{Address: 0, Length: 8},
		{Address: 12, Length: 16},
	})
	assert.NoError(t, err)
}

// TestVerify_AcceptsSwappedOrder verifies remainder order does not matter,
// since swap-removal reorders legitimately.
func TestVerify_AcceptsSwappedOrder(t *testing.T) {
	c := NewChecker(checkerSnapshot(), 3)
	err := c.Verify("swap-remove", fit.Block{Address: 8, Length: 4}, fit.List{
		{Address: 12, Length: 16},
		{Address: 0, Length: 8},
	})
	assert.NoError(t, err)
}

// TestVerify_RejectsTooSmallWinner verifies a winner under the wanted size
// fails.
func TestVerify_RejectsTooSmallWinner(t *testing.T) {
	c := NewChecker(checkerSnapshot(), 10)
	err := c.Verify("scan", fit.Block{Address: 8, Length: 4}, fit.List{
		{Address: 0, Length: 8},
		{Address: 12, Length: 16},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not satisfy")
}

// TestVerify_RejectsForeignWinner verifies a winner fabricated from outside
// the snapshot fails.
func TestVerify_RejectsForeignWinner(t *testing.T) {
	c := NewChecker(checkerSnapshot(), 3)
	err := c.Verify("fold", fit.Block{Address: 999, Length: 4}, fit.List{
		{Address: 0, Length: 8},
		{Address: 12, Length: 16},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the original list")
}

// TestVerify_RejectsAlteredWinnerLength verifies a winner whose length does
// not match the snapshot fails.
func TestVerify_RejectsAlteredWinnerLength(t *testing.T) {
	c := NewChecker(checkerSnapshot(), 3)
	err := c.Verify("fold", fit.Block{Address: 8, Length: 6}, fit.List{
		{Address: 0, Length: 8},
		{Address: 12, Length: 16},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has length")
}

// TestVerify_RejectsWrongCount verifies losing or copying blocks during
// removal fails.
func TestVerify_RejectsWrongCount(t *testing.T) {
	c := NewChecker(checkerSnapshot(), 3)
	err := c.Verify("rebuild", fit.Block{Address: 8, Length: 4}, fit.List{
		{Address: 0, Length: 8},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocks remain")
}

// TestVerify_RejectsLingeringWinner verifies a winner still present in the
// remainder fails.
func TestVerify_RejectsLingeringWinner(t *testing.T) {
	c := NewChecker(checkerSnapshot(), 3)
	err := c.Verify("rebuild", fit.Block{Address: 8, Length: 4}, fit.List{
		{Address: 8, Length: 4},
		{Address: 12, Length: 16},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "still present")
}

// TestVerify_RejectsMutatedSurvivor verifies a surviving block with an
// altered length fails.
func TestVerify_RejectsMutatedSurvivor(t *testing.T) {
	c := NewChecker(checkerSnapshot(), 3)
	err := c.Verify("scan", fit.Block{Address: 8, Length: 4}, fit.List{
		{Address: 0, Length: 7},
		{Address: 12, Length: 16},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has length")
}

// TestVerify_RejectsDuplicatedSurvivor verifies a block duplicated in the
// remainder fails even though the count matches.
func TestVerify_RejectsDuplicatedSurvivor(t *testing.T) {
	c := NewChecker(checkerSnapshot(), 3)
	err := c.Verify("scan", fit.Block{Address: 8, Length: 4}, fit.List{
		{Address: 0, Length: 8},
		{Address: 0, Length: 8},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appears twice")
}

// TestVerify_TagsStrategyName verifies failures carry the strategy label so
// a run abort names the culprit.
func TestVerify_TagsStrategyName(t *testing.T) {
	c := NewChecker(checkerSnapshot(), 10)
	err := c.Verify("swap-remove", fit.Block{Address: 8, Length: 4}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swap-remove")
}
