package components

import (
	cfg "github.com/automoto/boxhop/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound cues raised during a frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
