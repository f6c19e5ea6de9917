package reader

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

// Parses a coefficient vector: numbers separated by whitespace or
// commas. Everything after a '#' on a line is ignored.
func ParseCoefficients(text string) ([]float64, error) {
	var ret []float64
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo += 1
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			ret = append(ret, v)
		}
	}
	return ret, scanner.Err()
}

func ReadCoefficients(filename string) ([]float64, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "reading coefficients")
	}

	ret, err := ParseCoefficients(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing '%s'", filename)
	}
	return ret, nil
}

// Decodes a whole WAV file into stereo frames. Mono files are duplicated
// onto both channels by the decoder.
func ReadWAV(filename string) ([][2]float64, beep.Format, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, beep.Format{}, errors.Wrap(err, "opening wav")
	}
	// The decoded stream owns the file from here on
	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, format, errors.Wrapf(err, "decoding '%s'", filename)
	}
	defer stream.Close()

	var frames [][2]float64
	buf := make([][2]float64, 4096)
	for {
		n, ok := stream.Stream(buf)
		frames = append(frames, buf[:n]...)
		if !ok {
			break
		}
	}
	if stream.Err() != nil {
		return nil, format, errors.Wrapf(stream.Err(), "reading '%s'", filename)
	}

	return frames, format, nil
}
