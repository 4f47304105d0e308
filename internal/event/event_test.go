package event

import (
	"testing"
	"time"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "explicit utc offset",
			input: "2025-06-10T10:00:00+00:00",
			want:  time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "zulu designator",
			input: "2025-06-10T10:00:00Z",
			want:  time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "positive offset",
			input: "2025-06-10T15:30:00+05:30",
			want:  time.Date(2025, 6, 10, 15, 30, 0, 0, time.FixedZone("", 5*3600+1800)),
		},
		{
			name:    "missing offset",
			input:   "2025-06-10T10:00:00",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "next tuesday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstant(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseInstant(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInstant(%q) returned error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseInstant(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
