// Package presenter reconciles host text edits with masked text.
//
// A host widget reports each edit as an [EditDelta]: the new widget text,
// where the edit happened and how many runes were removed and added. A
// [Reconciler] turns it into the text and caret to feed to
// [mask.Mask.Apply], then stores the formatted result.
//
// Two strategies decide how widget text relates to the stored text. [Plain]
// shows only the formatted text, so the widget text is the new logical
// text. [Placeholder] shows the formatted text followed by the unfilled
// remainder of the mask. With the format "+7 ([000]) [000]-[00]-[00]" and
// the text "+7 (12" the widget shows
//
//	+7 (120) 000-00-00
//
// Here the widget text contains placeholder glyphs, so the edit is replayed
// onto the stored text instead.
package presenter
