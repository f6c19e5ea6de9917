package reader

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_ParseCoefficients(t *testing.T) {
	text := "# Concert Hall baseline\n" +
		"0.45, 0.47, 0.50, 0.75   # C0-C3\n" +
		"0.35 0.50 0.71 0.55\n" +
		"\n" +
		"-0.45;0.38\t0.73 0.75\n" +
		"0.35, 0.15, 0.70, 0.39\n"

	values, err := ParseCoefficients(text)
	if err != nil {
		t.Fatalf("FAILED: %s", err)
	}
	if len(values) != 16 {
		t.Fatalf("FAILED: Got %d values, expected 16", len(values))
	}
	if values[0] != 0.45 || values[8] != -0.45 || values[15] != 0.39 {
		t.Errorf("FAILED: Got %v", values)
	}

	if _, err := ParseCoefficients("0.1 zero"); err == nil {
		t.Errorf("FAILED: Expected a parse error")
	}
}

func Test_ReadCoefficients(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "coeffs.txt")
	if err := os.WriteFile(filename, []byte("0.1 0.2\n0.3"), 0644); err != nil {
		t.Fatal(err)
	}

	values, err := ReadCoefficients(filename)
	if err != nil {
		t.Fatalf("FAILED: %s", err)
	}
	if len(values) != 3 || values[2] != 0.3 {
		t.Errorf("FAILED: Got %v", values)
	}

	if _, err := ReadCoefficients(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("FAILED: Expected an error for a missing file")
	}
}

func Test_ReadWAVErrors(t *testing.T) {
	if _, _, err := ReadWAV(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Errorf("FAILED: Expected an error for a missing file")
	}

	filename := filepath.Join(t.TempDir(), "garbage.wav")
	if err := os.WriteFile(filename, []byte("not a riff file at all"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadWAV(filename); err == nil {
		t.Errorf("FAILED: Expected a decode error")
	}
	// The file must have been released after the failed decode
	if err := os.Remove(filename); err != nil {
		t.Errorf("FAILED: %s", err)
	}
}
