package systems

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/laststand/config"
)

func TestSynthesizeToneLength(t *testing.T) {
	tone := cfg.ToneConfig{StartHz: 1000, EndHz: 250, Duration: 0.5, Volume: 1}

	pcm := SynthesizeTone(tone, 8000)
	if len(pcm) != 4000*4 {
		t.Fatalf("len = %d, want %d", len(pcm), 4000*4)
	}

	for i := 0; i < len(pcm); i += 4 {
		l := binary.LittleEndian.Uint16(pcm[i:])
		r := binary.LittleEndian.Uint16(pcm[i+2:])
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
		}
	}
}

func TestSynthesizeToneFadesOut(t *testing.T) {
	tone := cfg.ToneConfig{StartHz: 440, EndHz: 440, Duration: 1, Volume: 1}
	pcm := SynthesizeTone(tone, 8000)

	peak := func(from, to int) int {
		top := 0
		for i := from; i < to; i++ {
			v := int(int16(binary.LittleEndian.Uint16(pcm[i*4:])))
			if v < 0 {
				v = -v
			}
			if v > top {
				top = v
			}
		}
		return top
	}

	head := peak(0, 800)
	tail := peak(7200, 8000)
	if tail >= head {
		t.Errorf("tail peak %d should be below head peak %d", tail, head)
	}
}

func TestSynthesizeToneRejectsEmpty(t *testing.T) {
	tests := []cfg.ToneConfig{
		{StartHz: 440, EndHz: 440, Duration: 0},
		{StartHz: 0, EndHz: 440, Duration: 1},
		{StartHz: 440, EndHz: -1, Duration: 1},
	}
	for _, tone := range tests {
		if pcm := SynthesizeTone(tone, 44100); pcm != nil {
			t.Errorf("%+v: got %d bytes, want none", tone, len(pcm))
		}
	}
}
