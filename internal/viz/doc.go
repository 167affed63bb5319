// Package viz provides terminal-based views of a recorded swarm trace.
//
// Two modes are offered:
//
//   - [Preview]: a one-shot Braille-canvas rendering of the map and
//     final agent paths, printed inline.
//   - [Model]: an interactive Bubble Tea playback of the trace, one
//     simulation tick at a time.
//
// # Key Bindings (playback)
//
//	Space - Pause/Resume playback
//	[ ]   - Step one tick back/forward
//	R     - Restart from tick 0
//	G     - Save the playback as a GIF in the working directory
//	Q     - Quit
package viz
