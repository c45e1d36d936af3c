package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/rs/zerolog"
)

// Recorder drains a capture stream into memory and lands the take as a
// 16-bit mono WAV file when stopped. Dispatch actions drive it: start on a
// shortcut press, stop (or cancel) on release or toggle.
type Recorder struct {
	cap        Capture
	log        zerolog.Logger
	dir        string
	deviceID   string
	sampleRate int

	mu        sync.Mutex
	recording bool
	stop      context.CancelFunc
	drained   chan struct{}
	samples   []float32
}

// NewRecorder creates a recorder writing WAV files into dir.
func NewRecorder(cap Capture, deviceID string, sampleRate int, dir string, log zerolog.Logger) *Recorder {
	return &Recorder{
		cap:        cap,
		log:        log,
		dir:        dir,
		deviceID:   deviceID,
		sampleRate: sampleRate,
	}
}

// IsRecording reports whether a take is in flight. This is the guard the
// cancel shortcut consults.
func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Devices lists the capture devices available for SetDevice.
func (r *Recorder) Devices() ([]AudioDevice, error) {
	return r.cap.ListDevices()
}

// SetDevice selects the capture device for subsequent takes. The device
// cannot change mid-take.
func (r *Recorder) SetDevice(deviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recording {
		return fmt.Errorf("cannot change device while recording")
	}
	r.deviceID = deviceID
	return nil
}

// Start begins capturing. Starting while already recording is an error.
func (r *Recorder) Start() error {
	r.mu.Lock()
	if r.recording {
		r.mu.Unlock()
		return fmt.Errorf("already recording")
	}
	r.recording = true
	r.samples = nil

	ctx, cancel := context.WithCancel(context.Background())
	r.stop = cancel
	r.drained = make(chan struct{})
	drained := r.drained
	deviceID := r.deviceID
	r.mu.Unlock()

	// Bounded audio buffer
	audioChan := make(chan []float32, 8)

	go func() {
		defer close(drained)
		for {
			select {
			case <-ctx.Done():
				return
			case samples := <-audioChan:
				r.mu.Lock()
				r.samples = append(r.samples, samples...)
				r.mu.Unlock()
			}
		}
	}()

	if err := r.cap.Start(ctx, deviceID, r.sampleRate, audioChan); err != nil {
		cancel()
		r.mu.Lock()
		r.recording = false
		r.mu.Unlock()
		return fmt.Errorf("failed to start capture: %w", err)
	}

	r.log.Info().Msg("recording started")
	return nil
}

// Stop ends the take and writes it to a timestamped WAV file, returning the
// path. Stopping while not recording is a no-op.
func (r *Recorder) Stop() (string, error) {
	samples, ok := r.finish()
	if !ok {
		return "", nil
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create recordings dir: %w", err)
	}

	path := filepath.Join(r.dir, time.Now().Format("20060102-150405")+".wav")
	if err := writeWAV(path, samples, r.sampleRate); err != nil {
		return "", err
	}

	r.log.Info().Str("path", path).Int("samples", len(samples)).Msg("recording saved")
	return path, nil
}

// Cancel ends the take and discards the captured samples.
func (r *Recorder) Cancel() {
	if _, ok := r.finish(); ok {
		r.log.Info().Msg("recording cancelled")
	}
}

// finish tears down the capture pipeline and hands back the samples.
func (r *Recorder) finish() ([]float32, bool) {
	r.mu.Lock()
	if !r.recording {
		r.mu.Unlock()
		return nil, false
	}
	r.recording = false
	cancel := r.stop
	drained := r.drained
	r.mu.Unlock()

	cancel()
	if err := r.cap.Stop(); err != nil {
		r.log.Error().Err(err).Msg("failed to stop capture")
	}
	<-drained

	r.mu.Lock()
	samples := r.samples
	r.samples = nil
	r.mu.Unlock()
	return samples, true
}

// writeWAV encodes float32 samples as 16-bit mono PCM.
func writeWAV(path string, samples []float32, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &gaudio.IntBuffer{
		Format: &gaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(pcm16(s))
	}

	if err := enc.Write(buf); err != nil {
		enc.Close()
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return f.Close()
}

// pcm16 converts a float32 sample in [-1, 1] to 16-bit PCM, clamping
// out-of-range input.
func pcm16(s float32) int16 {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return int16(s * 32767)
}
