package audio

import (
	"github.com/blaubaer/cw-keyer/pkg/common"
	"time"
)

func NewConfiguration() Configuration {
	return Configuration{
		false,
		20 * time.Millisecond,
		DefaultQueueSize,
	}
}

type Configuration struct {
	Disabled   bool          `yaml:"disabled,omitempty"`
	BufferSize time.Duration `yaml:"bufferSize,omitempty"`
	QueueSize  int           `yaml:"queueSize,omitempty"`
}

func (this *Configuration) SetupConfiguration(using common.FlagHolder) {
	using.Flag("audio.disabled", "If provided no audio device is opened. Elements are only decoded.").
		Envar("CWK_AUDIO_DISABLED").
		BoolVar(&this.Disabled)
	using.Flag("audio.bufferSize", "Buffer of the audio device. Smaller values reduce the latency of the side tone but may cause dropouts.").
		Envar("CWK_AUDIO_BUFFER_SIZE").
		DurationVar(&this.BufferSize)
	using.Flag("audio.queueSize", "How many elements can wait for playback before further elements are dropped.").
		Envar("CWK_AUDIO_QUEUE_SIZE").
		IntVar(&this.QueueSize)
}

// BufferBytes returns the number of bytes of unsigned 8-bit mono samples
// which fit into BufferSize.
func (this Configuration) BufferBytes(sampleRate int) int {
	return max(1, int(this.BufferSize.Seconds()*float64(sampleRate)))
}
