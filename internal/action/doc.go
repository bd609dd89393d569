// Package action defines the editor-level commands produced by key
// translation and the editing modes that select a translation table.
//
// Actions are plain values. They carry everything needed to change editor
// state, so the code that applies them never has to look at the key event
// that produced them.
//
//	Normal ──i──▶ Insert
//	  ▲             │
//	  └────Esc──────┘
package action
