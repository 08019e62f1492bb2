// Package prompt implements the keypress-driven menu session.
//
// A [Session] walks the user through an ordered list of [Question] values.
// Each question shows its choices with a marker in front of the current one;
// the user moves the marker with up/down, confirms with enter and cancels
// with esc or ctrl+c. Once the last question is confirmed the session prints
// a summary of every [Selection] and stops.
//
// The session does not touch the terminal. It reads discrete key events from
// an [InputSource] and writes text to an [OutputSink], both injected by the
// caller:
//
//	sess, err := prompt.New(questions)
//	if err != nil {
//		return err
//	}
//	sess.Start(src, screen)
//	return src.Run(ctx)
//
// # States
//
// A session starts Idle, becomes Active on [Session.Start] and ends in either
// Stopped (cancelled) or Completed (last question confirmed). Both terminal
// states detach the input source; later events are ignored.
//
// # Rendering
//
// Every accepted event that changes the cursor or the question clears the
// sink and redraws:
//
//	=========
//	Framework
//	=========
//	* Vanilla
//	React
//	Vue
//
// The border is as long as the prompt. Marker, border character and the
// completion banner can be changed with options.
package prompt
