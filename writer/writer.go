package writer

import (
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

// Streams a fixed buffer of stereo frames
type WriteStreamer struct {
	Data           [][2]float64
	SamplesWritten int
}

func (ws *WriteStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if ws.SamplesWritten >= len(ws.Data) {
		return 0, false
	}

	n = copy(samples, ws.Data[ws.SamplesWritten:])
	ws.SamplesWritten += n
	return n, true
}

func (ws *WriteStreamer) Err() error {
	return nil
}

func SaveAsWAV(filename string, wavFormat beep.Format, samples [][2]float64) error {
	outWAVFile, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer outWAVFile.Close()

	outStream := &WriteStreamer{Data: samples}
	err = wav.Encode(outWAVFile, outStream, wavFormat)
	if err != nil {
		return errors.Wrapf(err, "writing samples to '%s'", filename)
	}

	return nil
}

// Plays the frames on the default output device and blocks until done
func Play(format beep.Format, samples [][2]float64) error {
	err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	if err != nil {
		return errors.Wrap(err, "initializing speaker")
	}

	done := make(chan bool)
	speaker.Play(beep.Seq(&WriteStreamer{Data: samples}, beep.Callback(func() {
		done <- true
	})))
	<-done
	return nil
}
