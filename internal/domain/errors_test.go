package domain

import (
	"errors"
	"testing"
)

func TestStreamError_Fatal(t *testing.T) {
	tests := []struct {
		kind  Kind
		fatal bool
	}{
		{KindOpen, false},
		{KindMalformedLine, false},
		{KindTruncatedStream, false},
		{KindRead, false},
		{KindOutput, true},
		{KindClock, true},
	}
	for _, tt := range tests {
		e := &StreamError{Kind: tt.kind, Err: errors.New("boom")}
		if e.Fatal() != tt.fatal {
			t.Errorf("%v: Fatal() = %v, want %v", tt.kind, e.Fatal(), tt.fatal)
		}
	}
}

func TestStreamError_Unwrap(t *testing.T) {
	e := &StreamError{Kind: KindMalformedLine, Path: "a.log", Err: ErrNoTimestamp}
	if !errors.Is(e, ErrNoTimestamp) {
		t.Error("errors.Is did not reach the wrapped sentinel")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "calendar", want: FormatCalendar},
		{in: "epoch", want: FormatEpoch},
		{in: "unix", want: FormatEpoch},
		{in: "elapsed", want: FormatElapsed},
		{in: "bogus", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
