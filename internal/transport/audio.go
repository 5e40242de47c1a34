package transport

import (
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
)

// AudioClock follows the playback position of the song.
type AudioClock struct {
	AudioOffset int
	Offset      time.Duration

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
}

func NewAudioClock(streamer beep.StreamSeekCloser, format beep.Format, audioOffset int, offset time.Duration) *AudioClock {
	return &AudioClock{
		AudioOffset: audioOffset,
		Offset:      offset,
		streamer:    streamer,
		format:      format,
		ctrl:        &beep.Ctrl{Streamer: streamer},
	}
}

// Open decodes an .mp3 or .ogg file.
func Open(file string, audioOffset int, offset time.Duration) (*AudioClock, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("unable to open audio: %w", err)
	}
	streamer, format, err := decode(f, path.Ext(file))
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", file, err)
	}
	return NewAudioClock(streamer, format, audioOffset, offset), nil
}

// decode picks the decoder by file extension. rc is closed when decoding
// fails, otherwise the streamer owns it.
func decode(rc io.ReadCloser, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	var streamer beep.StreamSeekCloser
	var format beep.Format
	var err error
	switch strings.ToLower(ext) {
	case ".ogg":
		streamer, format, err = vorbis.Decode(rc)
	case ".mp3":
		streamer, format, err = mp3.Decode(rc)
	default:
		err = fmt.Errorf("unsupported audio format %s", ext)
	}
	if err != nil {
		rc.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

func (c *AudioClock) Start(delay time.Duration) error {
	if err := speaker.Init(c.format.SampleRate, c.format.SampleRate.N(time.Second/60)); nil != err {
		return fmt.Errorf("unable to open speaker: %w", err)
	}
	go func() {
		time.Sleep(delay)
		log.Println("starting playback")
		speaker.Play(c.ctrl)
	}()
	return nil
}

// Length of the song.
func (c *AudioClock) Length() time.Duration {
	return c.format.SampleRate.D(c.streamer.Len())
}

func (c *AudioClock) Tick() int {
	speaker.Lock()
	position := c.format.SampleRate.D(c.streamer.Position())
	speaker.Unlock()
	return TickAt(position, c.Offset, c.AudioOffset)
}

func (c *AudioClock) Pause() {
	speaker.Lock()
	c.ctrl.Paused = !c.ctrl.Paused
	speaker.Unlock()
}

func (c *AudioClock) Paused() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return c.ctrl.Paused
}

func (c *AudioClock) Close() error {
	speaker.Clear()
	return c.streamer.Close()
}
