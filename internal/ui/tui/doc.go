// Package tui runs a prompt session inside a bubbletea program.
//
// [Model] is both the session's input source and the bubbletea model: key
// presses are translated to [prompt.Key] values and handed to the session,
// which draws into a [Buffer]. View renders the buffer inside a framed box
// with the highlighted choice in the accent color and a help line below.
//
// The program renders to stderr so stdout stays free for --json output.
package tui
