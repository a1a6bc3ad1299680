// ABOUTME: Unit tests for the WAV writer
// ABOUTME: Verifies RIFF header fields and data placement
package encode

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/Resonate-Protocol/same-go/pkg/audio"
)

func TestWAV_Header(t *testing.T) {
	// 1 second of mono silence at 44.1kHz, 16-bit
	samples := make([]float32, 44100)

	wav, err := WAV(samples, audio.Format{SampleRate: 44100, Channels: 1, BitDepth: 16})
	if err != nil {
		t.Fatalf("WAV() failed: %v", err)
	}

	if len(wav) != 44+88200 {
		t.Errorf("WAV size = %d, want %d", len(wav), 44+88200)
	}

	if string(wav[0:4]) != "RIFF" {
		t.Errorf("RIFF magic = %q, want \"RIFF\"", string(wav[0:4]))
	}
	if fileSize := binary.LittleEndian.Uint32(wav[4:8]); fileSize != uint32(len(wav)-8) {
		t.Errorf("File size = %d, want %d", fileSize, len(wav)-8)
	}
	if string(wav[8:12]) != "WAVE" {
		t.Errorf("WAVE format = %q, want \"WAVE\"", string(wav[8:12]))
	}
	if string(wav[12:16]) != "fmt " {
		t.Errorf("fmt chunk = %q, want \"fmt \"", string(wav[12:16]))
	}
	if fmtSize := binary.LittleEndian.Uint32(wav[16:20]); fmtSize != 16 {
		t.Errorf("fmt size = %d, want 16", fmtSize)
	}
	if audioFormat := binary.LittleEndian.Uint16(wav[20:22]); audioFormat != 1 {
		t.Errorf("Audio format = %d, want 1 (PCM)", audioFormat)
	}
	if channels := binary.LittleEndian.Uint16(wav[22:24]); channels != 1 {
		t.Errorf("Channels = %d, want 1", channels)
	}
	if sampleRate := binary.LittleEndian.Uint32(wav[24:28]); sampleRate != 44100 {
		t.Errorf("Sample rate = %d, want 44100", sampleRate)
	}
	if byteRate := binary.LittleEndian.Uint32(wav[28:32]); byteRate != 88200 {
		t.Errorf("Byte rate = %d, want 88200", byteRate)
	}
	if blockAlign := binary.LittleEndian.Uint16(wav[32:34]); blockAlign != 2 {
		t.Errorf("Block align = %d, want 2", blockAlign)
	}
	if bits := binary.LittleEndian.Uint16(wav[34:36]); bits != 16 {
		t.Errorf("Bits per sample = %d, want 16", bits)
	}
	if string(wav[36:40]) != "data" {
		t.Errorf("data chunk = %q, want \"data\"", string(wav[36:40]))
	}
	if dataSize := binary.LittleEndian.Uint32(wav[40:44]); dataSize != 88200 {
		t.Errorf("Data size = %d, want 88200", dataSize)
	}
}

func TestWAV_24Bit(t *testing.T) {
	wav, err := WAV([]float32{0, 1}, audio.Format{SampleRate: 48000, BitDepth: 24})
	if err != nil {
		t.Fatalf("WAV() failed: %v", err)
	}

	if len(wav) != 44+6 {
		t.Fatalf("WAV size = %d, want 50", len(wav))
	}
	if channels := binary.LittleEndian.Uint16(wav[22:24]); channels != 1 {
		t.Errorf("Channels = %d, want default of 1", channels)
	}
	if blockAlign := binary.LittleEndian.Uint16(wav[32:34]); blockAlign != 3 {
		t.Errorf("Block align = %d, want 3", blockAlign)
	}
	if byteRate := binary.LittleEndian.Uint32(wav[28:32]); byteRate != 144000 {
		t.Errorf("Byte rate = %d, want 144000", byteRate)
	}
	if !bytes.Equal(wav[47:50], []byte{0xFF, 0xFF, 0x7F}) {
		t.Errorf("full scale sample = %v, want [255 255 127]", wav[47:50])
	}
}

func TestWAV_EmptyData(t *testing.T) {
	wav, err := WAV(nil, audio.Format{SampleRate: 44100, BitDepth: 16})
	if err != nil {
		t.Fatalf("WAV() failed: %v", err)
	}

	if len(wav) != 44 {
		t.Errorf("Empty WAV size = %d, want 44", len(wav))
	}
	if dataSize := binary.LittleEndian.Uint32(wav[40:44]); dataSize != 0 {
		t.Errorf("Data size = %d, want 0", dataSize)
	}
}

func TestWAV_InvalidFormat(t *testing.T) {
	if _, err := WAV(nil, audio.Format{SampleRate: 0, BitDepth: 16}); err == nil {
		t.Error("expected error for zero sample rate")
	}
	if _, err := WAV(nil, audio.Format{SampleRate: 44100, BitDepth: 8}); err == nil {
		t.Error("expected error for 8-bit depth")
	}
}

func TestWriteWAV(t *testing.T) {
	var buf bytes.Buffer
	samples := []float32{0.5, -0.5}
	format := audio.Format{SampleRate: 8000, Channels: 1, BitDepth: 16}

	if err := WriteWAV(&buf, samples, format); err != nil {
		t.Fatalf("WriteWAV() failed: %v", err)
	}

	want, _ := WAV(samples, format)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Error("WriteWAV output differs from WAV")
	}
}
