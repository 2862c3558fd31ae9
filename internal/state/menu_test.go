package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nebula-linux/nebula-keybind-menu/internal/keybind"
)

func testEntries() []keybind.Entry {
	return []keybind.Entry{
		{Keys: "SUPER+SPACE", Name: "Launcher", Desc: "Open app launcher"},
		{Keys: "SUPER+B", Name: "Web Browser", Desc: "Open default browser"},
		{Keys: "SUPER+ENTER", Name: "Terminal", Desc: "Open terminal"},
		{Keys: "SUPER+Q", Name: "Close Window", Desc: "Close focused window"},
	}
}

func TestNewMenu_ShowsEverything(t *testing.T) {
	m := NewMenu(testEntries())
	assert.Equal(t, testEntries(), m.View())
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, "", m.Query())
	assert.Equal(t, "Launcher", m.View()[m.Selected()].Name)
}

func TestSetQuery_RefiltersAndResetsSelection(t *testing.T) {
	m := NewMenu(testEntries())
	m.Move(2)
	require.Equal(t, 2, m.Selected())

	assert.True(t, m.SetQuery("open"))
	assert.Len(t, m.View(), 3)
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.Offset())
}

func TestSetQuery_SameQueryIsNoop(t *testing.T) {
	m := NewMenu(testEntries())
	m.Move(1)
	assert.False(t, m.SetQuery(""))
	assert.Equal(t, 1, m.Selected())
}

func TestSetQuery_NoMatches(t *testing.T) {
	m := NewMenu(testEntries())
	m.SetQuery("xyz")
	assert.Empty(t, m.View())
	assert.Equal(t, 0, m.Selected())
	m.Move(1)
	m.Move(-1)
	m.Bottom()
	assert.Equal(t, 0, m.Selected())
}

func TestMove_Clamps(t *testing.T) {
	m := NewMenu(testEntries())
	m.Move(-1)
	assert.Equal(t, 0, m.Selected())
	m.Move(10)
	assert.Equal(t, 3, m.Selected())
	m.Move(1)
	assert.Equal(t, 3, m.Selected())
	m.Top()
	assert.Equal(t, 0, m.Selected())
	m.Bottom()
	assert.Equal(t, 3, m.Selected())
}

func TestSelectionInvariantAcrossTransitions(t *testing.T) {
	m := NewMenu(testEntries())
	steps := []func(){
		func() { m.Move(3) },
		func() { m.SetQuery("s") },
		func() { m.Move(5) },
		func() { m.SetQuery("super+q") },
		func() { m.Move(-4) },
		func() { m.SetQuery("nothing") },
		func() { m.Bottom() },
		func() { m.SetQuery("") },
		func() { m.Bottom() },
	}
	for i, step := range steps {
		step()
		if len(m.View()) == 0 {
			assert.Equal(t, 0, m.Selected(), "step %d", i)
			continue
		}
		assert.GreaterOrEqual(t, m.Selected(), 0, "step %d", i)
		assert.Less(t, m.Selected(), len(m.View()), "step %d", i)
	}
}

func TestZeroMenu(t *testing.T) {
	var m Menu
	m.Move(1)
	m.Bottom()
	m.Scroll(nil, 10)
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.Offset())
	assert.Equal(t, 1, m.PageSize(nil, 10))
}

func TestScroll_KeepsSelectionVisible(t *testing.T) {
	entries := make([]keybind.Entry, 10)
	m := NewMenu(entries)
	heights := []int{3, 3, 2, 3, 3, 3, 2, 3, 3, 3}
	const visible = 7

	visibleCheck := func() {
		start := 0
		for i := 0; i < m.Selected(); i++ {
			start += heights[i]
		}
		end := start + heights[m.Selected()]
		assert.GreaterOrEqual(t, start, m.Offset(), "selected %d", m.Selected())
		assert.LessOrEqual(t, end, m.Offset()+visible, "selected %d", m.Selected())
	}

	for i := 0; i < 12; i++ {
		m.Move(1)
		m.Scroll(heights, visible)
		visibleCheck()
	}
	assert.Equal(t, 28-visible, m.Offset())

	for i := 0; i < 12; i++ {
		m.Move(-1)
		m.Scroll(heights, visible)
		visibleCheck()
	}
	assert.Equal(t, 0, m.Offset())
}

func TestScroll_DoesNotMoveWhenVisible(t *testing.T) {
	m := NewMenu(make([]keybind.Entry, 5))
	heights := []int{3, 3, 3, 3, 3}
	m.Move(1)
	m.Scroll(heights, 9)
	assert.Equal(t, 0, m.Offset())
}

func TestScroll_TallBlockPinnedAtStart(t *testing.T) {
	m := NewMenu(make([]keybind.Entry, 3))
	heights := []int{3, 3, 3}
	m.Move(2)
	m.Scroll(heights, 2)
	assert.Equal(t, 6, m.Offset())
}

func TestScroll_ShrinkingWindowClampsOffset(t *testing.T) {
	m := NewMenu(make([]keybind.Entry, 4))
	heights := []int{3, 3, 3, 3}
	m.Bottom()
	m.Scroll(heights, 3)
	assert.Equal(t, 9, m.Offset())

	m.Top()
	m.Scroll(heights, 20)
	assert.Equal(t, 0, m.Offset())
}

func TestPageSize(t *testing.T) {
	m := NewMenu(make([]keybind.Entry, 5))
	heights := []int{3, 2, 3, 3, 3}
	assert.Equal(t, 3, m.PageSize(heights, 9))
	assert.Equal(t, 1, m.PageSize(heights, 1))
	m.Move(3)
	assert.Equal(t, 2, m.PageSize(heights, 100))
}
