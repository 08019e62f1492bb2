// Package terminal connects a prompt session to a plain terminal.
//
// [Input] reads key presses from stdin, switching the terminal to raw mode
// while a session listens, and [Screen] redraws the menu with ANSI clear
// sequences. Both also work on pipes, which makes scripted input possible:
//
//	printf '\033[B\r\r' | choose
//
// Key decoding is chunk based: each read is decoded on its own, so an escape
// byte at the end of a read is the escape key rather than the start of a
// sequence.
package terminal
