package app

import (
	"bytes"
	"github.com/blaubaer/cw-keyer/pkg/common"
	"github.com/blaubaer/cw-keyer/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfiguration_loadFrom(t *testing.T) {
	instance := NewConfiguration()

	err := instance.loadFrom(strings.NewReader(`
wpm: 30
tone:
  frequency: 700
input:
  type: keyboard
  midi:
    port: "^Arduino"
    ditNote: 60
    dahNote: 62
    speedController: 7
`))
	require.NoError(t, err)

	assert.Equal(t, 30, instance.Wpm)
	assert.Equal(t, 700.0, instance.Tone.Frequency)
	assert.Equal(t, 12.0, instance.Tone.Ramp)
	assert.Equal(t, 48000, instance.Tone.SampleRate)
	assert.Equal(t, input.TypeKeyboard, instance.Input.Type)
	assert.Equal(t, "^Arduino", instance.Input.Midi.Port.String())
	assert.Equal(t, uint8(60), instance.Input.Midi.DitNote)
	assert.Equal(t, time.Second, instance.CheckInterval)
}

func TestConfiguration_loadFrom_empty(t *testing.T) {
	instance := NewConfiguration()

	require.NoError(t, instance.loadFrom(strings.NewReader("")))

	assert.Equal(t, NewConfiguration(), instance)
}

func TestConfiguration_loadFrom_unknownField(t *testing.T) {
	instance := NewConfiguration()

	err := instance.loadFrom(strings.NewReader("speed: 30\n"))

	assert.Error(t, err)
}

func TestConfiguration_loadFromFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "configuration.yml")
	require.NoError(t, os.WriteFile(fn, []byte("wpm: 18\n"), 0600))

	instance := NewConfiguration()
	require.NoError(t, instance.loadFromFile(fn, false))
	assert.Equal(t, 18, instance.Wpm)
}

func TestConfiguration_loadFromFile_absent(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "absent.yml")

	instance := NewConfiguration()
	assert.NoError(t, instance.loadFromFile(fn, true))
	assert.Error(t, instance.loadFromFile(fn, false))
	assert.Equal(t, NewConfiguration(), instance)
}

func TestConfiguration_saveTo(t *testing.T) {
	instance := NewConfiguration()
	instance.Wpm = 20
	instance.Input.Midi.Port = mustRegexp(t, "^Keyer$")

	var buf bytes.Buffer
	require.NoError(t, instance.saveTo(&buf))

	assert.Contains(t, buf.String(), "wpm: 20\n")
	assert.Contains(t, buf.String(), "type: midi\n")
	assert.Contains(t, buf.String(), "^Keyer$")
	assert.NotContains(t, buf.String(), "sampleRate")

	actual := NewConfiguration()
	require.NoError(t, actual.loadFrom(&buf))
	assert.Equal(t, 20, actual.Wpm)
	assert.Equal(t, "^Keyer$", actual.Input.Midi.Port.String())
}

func TestConfiguration_mergeFrom(t *testing.T) {
	instance := NewConfiguration()
	instance.Wpm = 30
	instance.Input.Midi.Port = mustRegexp(t, "^Arduino")

	var flags Configuration
	flags.Tone.Frequency = 600
	flags.Input.Keyboard.Dit = "a"

	require.NoError(t, instance.mergeFrom(flags))

	assert.Equal(t, 30, instance.Wpm)
	assert.Equal(t, 600.0, instance.Tone.Frequency)
	assert.Equal(t, 12.0, instance.Tone.Ramp)
	assert.Equal(t, 48000, instance.Tone.SampleRate)
	assert.Equal(t, "^Arduino", instance.Input.Midi.Port.String())
	assert.Equal(t, "a", instance.Input.Keyboard.Dit)
	assert.Equal(t, "]", instance.Input.Keyboard.Dah)
}

func TestConfiguration_mergeFrom_overridesRegexp(t *testing.T) {
	instance := NewConfiguration()
	instance.Input.Midi.Port = mustRegexp(t, "^Arduino")

	var flags Configuration
	flags.Wpm = 12
	flags.Input.Midi.Port = mustRegexp(t, "^Teensy")

	require.NoError(t, instance.mergeFrom(flags))

	assert.Equal(t, 12, instance.Wpm)
	assert.Equal(t, "^Teensy", instance.Input.Midi.Port.String())
}

func TestConfiguration_Validate(t *testing.T) {
	cases := []struct {
		name    string
		modify  func(*Configuration)
		isValid bool
	}{{
		name:    "defaults",
		modify:  func(*Configuration) {},
		isValid: true,
	}, {
		name:    "slowest",
		modify:  func(v *Configuration) { v.Wpm = 5 },
		isValid: true,
	}, {
		name:    "fastest",
		modify:  func(v *Configuration) { v.Wpm = 50 },
		isValid: true,
	}, {
		name: "fastestWithShortRamp",
		modify: func(v *Configuration) {
			v.Tone.Ramp = 10
			v.Wpm = 60
		},
		isValid: true,
	}, {
		name:   "tooSlow",
		modify: func(v *Configuration) { v.Wpm = 4 },
	}, {
		name:   "tooFastForRamp",
		modify: func(v *Configuration) { v.Wpm = 51 },
	}, {
		name: "tooFast",
		modify: func(v *Configuration) {
			v.Tone.Ramp = 6
			v.Wpm = 61
		},
	}, {
		name: "rampTooLongForAnySpeed",
		modify: func(v *Configuration) {
			v.Tone.Ramp = 200
			v.Wpm = 5
		},
	}, {
		name:   "noCheckInterval",
		modify: func(v *Configuration) { v.CheckInterval = 0 },
	}, {
		name:   "toneFrequencyAboveNyquist",
		modify: func(v *Configuration) { v.Tone.Frequency = 30000 },
	}, {
		name:   "noAudioQueue",
		modify: func(v *Configuration) { v.Audio.QueueSize = 0 },
	}}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			instance := NewConfiguration()
			c.modify(&instance)

			err := instance.Validate()
			if c.isValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func Test_defaultConfigurationFile(t *testing.T) {
	actual := defaultConfigurationFile()

	assert.Equal(t, "configuration.yml", filepath.Base(actual))
}

func mustRegexp(t *testing.T, plain string) common.Regexp {
	t.Helper()
	result, err := common.NewRegexp(plain)
	require.NoError(t, err)
	return result
}
