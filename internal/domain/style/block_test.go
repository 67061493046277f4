package style_test

import (
	"testing"

	"github.com/commentstyle/commentstyle/internal/domain/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulator_CloseWhenEmpty(t *testing.T) {
	acc := style.NewAccumulator("//")
	_, ok := acc.Close()
	assert.False(t, ok)
}

func TestAccumulator_GroupsConsecutiveComments(t *testing.T) {
	acc := style.NewAccumulator("//")
	assert.True(t, acc.Add(3, "// One"))
	assert.True(t, acc.Add(4, "//two."))
	assert.False(t, acc.Add(5, "x := 1"))

	b, ok := acc.Close()
	require.True(t, ok)
	assert.Equal(t, 3, b.StartLine)
	assert.Equal(t, []string{"// One", "//two."}, b.Raw)
	assert.Equal(t, []string{" One", "two."}, b.Stripped)

	_, ok = acc.Close()
	assert.False(t, ok, "closing twice yields nothing")
}

func TestAccumulator_NewBlockAfterClose(t *testing.T) {
	acc := style.NewAccumulator("#")
	acc.Add(1, "# A.")
	acc.Close()
	acc.Add(7, "# B.")

	b, ok := acc.Close()
	require.True(t, ok)
	assert.Equal(t, 7, b.StartLine)
	assert.Equal(t, []string{"# B."}, b.Raw)
}
