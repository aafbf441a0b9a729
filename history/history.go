// seehuhn.de/go/mapedit - a tile map editing core
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package history records reversible map edits and replays them for undo
// and redo.
//
// Line and stamp edits are undone by list operations on the object stores.
// Shape edits cannot be inverted from the shape alone, so they carry
// snapshots of the solid layer from before and after the edit.
package history

import (
	"seehuhn.de/go/mapedit/layer"
	"seehuhn.de/go/mapedit/store"
)

// Command is one reversible edit.  The variants are [DrawLine],
// [DeleteLine], [DrawStamp], [DeleteStamp] and [Shape].
type Command interface {
	isCommand()
}

// DrawLine adds a line.
type DrawLine struct {
	Line store.Line
}

// DeleteLine removes a line.
type DeleteLine struct {
	Line store.Line
}

// DrawStamp places a stamp.
type DrawStamp struct {
	Stamp store.Stamp
}

// DeleteStamp removes a stamp.
type DeleteStamp struct {
	Stamp store.Stamp
}

// Shape fills or clears an area of the solid layer.  Cut is set for
// delete-mode shapes, which also erase the area from the line and stamp
// layers.
type Shape struct {
	Before, After *layer.Snapshot
	Cut           *store.Cut
}

func (DrawLine) isCommand()    {}
func (DeleteLine) isCommand()  {}
func (DrawStamp) isCommand()   {}
func (DeleteStamp) isCommand() {}
func (Shape) isCommand()       {}

// Target is the map state commands act on.
type Target interface {
	AppendLine(l store.Line)
	RemoveLine(id int)
	AppendStamp(s store.Stamp)
	RemoveStamp(id int)

	// RestoreSolid replaces the solid layer and rebuilds the border layer.
	RestoreSolid(s *layer.Snapshot)

	Cut(c store.Cut)
	Uncut(id int)
}

// Manager keeps the undo and redo stacks.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	target    Target
	undoStack []Command
	redoStack []Command
}

// NewManager returns a manager with empty stacks.
func NewManager(t Target) *Manager {
	return &Manager{target: t}
}

// Execute applies cmd and records it.  The redo stack is discarded.
func (m *Manager) Execute(cmd Command) {
	apply(m.target, cmd)
	m.Push(cmd)
}

// Push records cmd, whose effect the caller has already applied.  The redo
// stack is discarded.
func (m *Manager) Push(cmd Command) {
	m.undoStack = append(m.undoStack, cmd)
	clear(m.redoStack)
	m.redoStack = m.redoStack[:0]
}

// Undo reverts the most recent command.  It returns false if there was
// nothing to undo.
func (m *Manager) Undo() bool {
	n := len(m.undoStack)
	if n == 0 {
		return false
	}
	cmd := m.undoStack[n-1]
	m.undoStack[n-1] = nil
	m.undoStack = m.undoStack[:n-1]
	revert(m.target, cmd)
	m.redoStack = append(m.redoStack, cmd)
	return true
}

// Redo applies the most recently undone command again.  It returns false
// if there was nothing to redo.
func (m *Manager) Redo() bool {
	n := len(m.redoStack)
	if n == 0 {
		return false
	}
	cmd := m.redoStack[n-1]
	m.redoStack[n-1] = nil
	m.redoStack = m.redoStack[:n-1]
	apply(m.target, cmd)
	m.undoStack = append(m.undoStack, cmd)
	return true
}

// CanUndo reports whether Undo would do something.
func (m *Manager) CanUndo() bool { return len(m.undoStack) > 0 }

// CanRedo reports whether Redo would do something.
func (m *Manager) CanRedo() bool { return len(m.redoStack) > 0 }

// Len returns the sizes of the undo and redo stacks.
func (m *Manager) Len() (undo, redo int) {
	return len(m.undoStack), len(m.redoStack)
}

// Clear empties both stacks without touching the target.
func (m *Manager) Clear() {
	m.undoStack = nil
	m.redoStack = nil
}

func apply(t Target, cmd Command) {
	switch c := cmd.(type) {
	case DrawLine:
		t.AppendLine(c.Line)
	case DeleteLine:
		t.RemoveLine(c.Line.ID)
	case DrawStamp:
		t.AppendStamp(c.Stamp)
	case DeleteStamp:
		t.RemoveStamp(c.Stamp.ID)
	case Shape:
		t.RestoreSolid(c.After)
		if c.Cut != nil {
			t.Cut(*c.Cut)
		}
	}
}

func revert(t Target, cmd Command) {
	switch c := cmd.(type) {
	case DrawLine:
		t.RemoveLine(c.Line.ID)
	case DeleteLine:
		t.AppendLine(c.Line)
	case DrawStamp:
		t.RemoveStamp(c.Stamp.ID)
	case DeleteStamp:
		t.AppendStamp(c.Stamp)
	case Shape:
		t.RestoreSolid(c.Before)
		if c.Cut != nil {
			t.Uncut(c.Cut.ID)
		}
	}
}
