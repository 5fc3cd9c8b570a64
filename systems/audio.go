package systems

import (
	"log"

	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/yohamta/donburi/ecs"
)

// SoundPlayer plays a sound cue. Errors are reported but never stop the game.
type SoundPlayer interface {
	Play(id cfg.SoundID) error
}

// QueueSound records a sound cue to be played at the end of the frame.
func QueueSound(ecs *ecs.ECS, id cfg.SoundID) {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// NewAudioSystem drains the queued sound cues into player. A nil player is a
// silent setup: cues are dropped.
func NewAudioSystem(player SoundPlayer) ecs.System {
	failed := make(map[cfg.SoundID]bool)

	return func(ecs *ecs.ECS) {
		entry, ok := components.Audio.First(ecs.World)
		if !ok {
			return
		}
		audioData := components.Audio.Get(entry)

		for _, id := range audioData.PendingSFX {
			if player == nil {
				continue
			}
			if err := player.Play(id); err != nil && !failed[id] {
				// Only report once per sound; a missing sound stays missing.
				failed[id] = true
				log.Printf("Warning: could not play sound %d: %v", id, err)
			}
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}
