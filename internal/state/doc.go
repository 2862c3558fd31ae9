// Package state holds the interactive menu state: the current query, the
// filtered view computed from it, the highlighted entry and the scroll
// position that keeps that entry on screen.
//
// # Transitions
//
// Menu is a value type. Every transition is a pointer-receiver method and
// keeps these invariants:
//
//   - View is keybind.Filter(Entries, Query) at all times
//   - Selected lies in [0, len(View)), and is 0 when View is empty
//   - a query change resets Selected and Offset to 0
//   - navigation (Move, Top, Bottom) never refilters
//
// # Scrolling
//
// The package knows nothing about rendering. Callers pass the line height of
// every entry block to Scroll and PageSize; Scroll moves Offset by the
// smallest amount that brings the selected block into the visible window.
//
// # Usage Example
//
//	menu := state.NewMenu(entries)
//	menu.SetQuery("term")
//	menu.Move(1)
//	menu.Scroll(heights, contentHeight)
//	highlighted := menu.View()[menu.Selected()]
package state
