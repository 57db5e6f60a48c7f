// Package player hosts trance evaluators in an [Ebitengine] window.
//
// The primary entry point is [Run], which compiles a pattern, renders it
// frame by frame on a CPU worker pool, and uploads the result to the screen.
// Mouse and touch input feed the pattern's pointer interaction.
//
// Usage:
//
//	desc, _ := trance.Preset("vortex")
//	player.Run(player.Config{
//		Title:     "Vortex",
//		Archetype: desc,
//	})
//
// For sequenced shows, build a [Playlist] and set [Config.Playlist]; entries
// crossfade on a timer and can capture labeled screenshots as they switch.
//
// [Ebitengine]: https://ebitengine.org
package player
