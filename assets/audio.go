package assets

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path/filepath"
	"strings"

	"github.com/automoto/boxhop/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

var ErrNoSound = errors.New("no sound defined")

// AudioLoader decodes sound effects once and plays them from memory.
// Files come from an optional file system; a sound without a readable file
// falls back to its synthesized tone.
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte
	context  *audio.Context
	files    fs.FS
	volume   float64
}

// NewAudioLoader creates a new audio loader with the given context. files may
// be nil.
func NewAudioLoader(ctx *audio.Context, files fs.FS) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
		files:    files,
		volume:   config.Audio.DefaultSFXVol,
	}
}

// Preload decodes every configured sound so the first play does not stall.
func (l *AudioLoader) Preload() error {
	var errs []error
	for id := range config.Sound.Tones {
		if _, err := l.load(id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Play starts a new player for the sound.
func (l *AudioLoader) Play(id config.SoundID) error {
	if l.volume <= 0 {
		return nil
	}

	data, err := l.load(id)
	if err != nil {
		return err
	}

	volume := l.volume
	if mult, ok := config.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}

	player := l.context.NewPlayerFromBytes(data)
	player.SetVolume(math.Min(volume, 1))
	player.Play()
	return nil
}

func (l *AudioLoader) load(id config.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}

	var decoded []byte
	if path, ok := config.Sound.SFXPaths[id]; ok && l.files != nil {
		data, err := l.decodeFile(path)
		if err == nil {
			decoded = data
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if decoded == nil {
		tone, ok := config.Sound.Tones[id]
		if !ok {
			return nil, fmt.Errorf("sound %d: %w", id, ErrNoSound)
		}
		decoded = SynthesizeTone(tone, l.context.SampleRate())
	}

	l.sfxCache[id] = decoded
	return decoded, nil
}

func (l *AudioLoader) decodeFile(path string) ([]byte, error) {
	data, err := fs.ReadFile(l.files, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		stream = s

	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		stream = s

	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}

// SynthesizeTone renders a square-wave tone as 16-bit little-endian stereo
// PCM, the format audio.Context players expect.
func SynthesizeTone(tone config.Tone, sampleRate int) []byte {
	samplesPerStep := sampleRate * tone.StepMillis / 1000
	total := samplesPerStep * len(tone.Frequencies)
	buf := make([]byte, 0, total*4)

	const amplitude = 0.25 * math.MaxInt16
	for step, freq := range tone.Frequencies {
		for i := 0; i < samplesPerStep; i++ {
			n := step*samplesPerStep + i
			// Linear fade out over the whole cue avoids a click at the end.
			envelope := 1 - float64(n)/float64(total)
			v := int16(amplitude * envelope)
			if math.Mod(float64(i)*freq/float64(sampleRate), 1) >= 0.5 {
				v = -v
			}
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
		}
	}
	return buf
}
