package audio

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the rate every track is resampled to.
const SampleRate = 44100

// Decoded streams are 16-bit stereo.
const bytesPerSecond = SampleRate * 4

var ErrNoTracks = errors.New("no music tracks")

// Track is a playable file
type Track struct {
	Name string
	Path string
}

// supported maps file extensions to decoders.
var supported = map[string]func(io.ReadSeeker) (io.ReadSeeker, int64, error){
	".mp3": func(r io.ReadSeeker) (io.ReadSeeker, int64, error) {
		s, err := mp3.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	},
	".ogg": func(r io.ReadSeeker) (io.ReadSeeker, int64, error) {
		s, err := vorbis.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	},
	".wav": func(r io.ReadSeeker) (io.ReadSeeker, int64, error) {
		s, err := wav.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	},
}

// ScanTracks lists the playable files in dir by name.
func ScanTracks(dir string) ([]Track, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan music: %w", err)
	}
	var tracks []Track
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := supported[strings.ToLower(filepath.Ext(e.Name()))]; !ok {
			continue
		}
		tracks = append(tracks, Track{
			Name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			Path: filepath.Join(dir, e.Name()),
		})
	}
	return tracks, nil
}

// FormatTime renders d as mm:ss.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// MusicPlayer loops background tracks
// Uses Ebitengine's audio package internally
type MusicPlayer struct {
	MasterVolume float64

	ctx      *audio.Context
	tracks   []Track
	current  int
	player   *audio.Player
	file     *os.File
	duration time.Duration
}

func NewMusicPlayer(ctx *audio.Context, tracks []Track) *MusicPlayer {
	return &MusicPlayer{
		MasterVolume: 0.5,
		ctx:          ctx,
		tracks:       tracks,
	}
}

func (mp *MusicPlayer) load(i int) error {
	if len(mp.tracks) == 0 || mp.ctx == nil {
		return ErrNoTracks
	}
	mp.unload()
	t := mp.tracks[i]
	decode := supported[strings.ToLower(filepath.Ext(t.Path))]
	if decode == nil {
		return fmt.Errorf("track %s: unsupported format", t.Name)
	}
	f, err := os.Open(t.Path)
	if err != nil {
		return fmt.Errorf("track %s: %w", t.Name, err)
	}
	stream, length, err := decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", t.Name, err)
	}
	p, err := mp.ctx.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		f.Close()
		return fmt.Errorf("player %s: %w", t.Name, err)
	}
	p.SetVolume(mp.MasterVolume)
	mp.current = i
	mp.player = p
	mp.file = f
	mp.duration = time.Duration(length) * time.Second / bytesPerSecond
	log.Printf("Music: %s (%s)", t.Name, FormatTime(mp.duration))
	return nil
}

func (mp *MusicPlayer) unload() {
	if mp.player != nil {
		mp.player.Close()
		mp.player = nil
	}
	if mp.file != nil {
		mp.file.Close()
		mp.file = nil
	}
	mp.duration = 0
}

// Play starts or resumes the current track
func (mp *MusicPlayer) Play() error {
	if mp.player == nil {
		if err := mp.load(mp.current); err != nil {
			return err
		}
	}
	mp.player.Play()
	return nil
}

// Pause pauses playback
func (mp *MusicPlayer) Pause() {
	if mp.player != nil {
		mp.player.Pause()
	}
}

// Toggle flips between playing and paused
func (mp *MusicPlayer) Toggle() error {
	if mp.Playing() {
		mp.Pause()
		return nil
	}
	return mp.Play()
}

// Reset rewinds the current track
func (mp *MusicPlayer) Reset() error {
	if mp.player == nil {
		return nil
	}
	return mp.player.SetPosition(0)
}

// Next switches to the following track, keeping the play state
func (mp *MusicPlayer) Next() error {
	if len(mp.tracks) == 0 {
		return ErrNoTracks
	}
	playing := mp.Playing()
	if err := mp.load((mp.current + 1) % len(mp.tracks)); err != nil {
		return err
	}
	if playing {
		mp.player.Play()
	}
	return nil
}

func (mp *MusicPlayer) Playing() bool {
	return mp.player != nil && mp.player.IsPlaying()
}

// Position is the offset into the current loop
func (mp *MusicPlayer) Position() time.Duration {
	if mp.player == nil || mp.duration <= 0 {
		return 0
	}
	return mp.player.Position() % mp.duration
}

// Current is the current track name, or "" without tracks
func (mp *MusicPlayer) Current() string {
	if len(mp.tracks) == 0 {
		return ""
	}
	return mp.tracks[mp.current].Name
}

// Status is a one-line description for the HUD
func (mp *MusicPlayer) Status() string {
	if len(mp.tracks) == 0 {
		return "music: none"
	}
	state := "paused"
	if mp.Playing() {
		state = "playing"
	}
	return fmt.Sprintf("music: %s [%s] %s / %s vol %d%%", mp.Current(), state, FormatTime(mp.Position()), FormatTime(mp.duration), int(mp.MasterVolume*100+0.5))
}

// SetVolume sets master volume (0-1)
func (mp *MusicPlayer) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	mp.MasterVolume = v
	if mp.player != nil {
		mp.player.SetVolume(v)
	}
}

// Close releases the current track
func (mp *MusicPlayer) Close() {
	mp.unload()
}

// Report logs a control error without interrupting playback state.
func Report(action string, err error) {
	if err != nil && !errors.Is(err, ErrNoTracks) {
		log.Printf("music %s: %v", action, err)
	}
}
