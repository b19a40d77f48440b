package audio

import (
	"os/exec"
	"strconv"
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// DetectBackend searches for an audio player that accepts raw PCM on stdin.
// Priority: pacat > pw-cat > aplay
func DetectBackend() (*BackendConfig, error) {
	rate := strconv.Itoa(SampleRate)

	// PulseAudio, also served by PipeWire's pulse shim
	if path, err := lookPath("pacat"); err == nil {
		return &BackendConfig{
			Name: "pacat",
			Path: path,
			Args: []string{
				"--raw",
				"--format=s16le",
				"--rate=" + rate,
				"--channels=2",
				"--latency-msec=50",
				"--playback",
			},
		}, nil
	}

	// PipeWire native
	if path, err := lookPath("pw-cat"); err == nil {
		return &BackendConfig{
			Name: "pw-cat",
			Path: path,
			Args: []string{
				"--playback",
				"--format=s16",
				"--rate=" + rate,
				"--channels=2",
				"--latency=50ms",
				"-",
			},
		}, nil
	}

	// ALSA
	if path, err := lookPath("aplay"); err == nil {
		return &BackendConfig{
			Name: "aplay",
			Path: path,
			Args: []string{
				"-t", "raw",
				"-f", "S16_LE",
				"-r", rate,
				"-c", "2",
				"-q",
			},
		}, nil
	}

	return nil, ErrNoAudioBackend
}
