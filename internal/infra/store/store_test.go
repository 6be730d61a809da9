package store

import "testing"

func TestNextID(t *testing.T) {
	tests := []struct {
		name     string
		nowMilli int64
		lastID   int64
		want     int64
	}{
		{"clock ahead of last id", 1000, 500, 1000},
		{"same millisecond", 1000, 1000, 1001},
		{"clock behind last id", 1000, 2000, 2001},
		{"first record", 1000, 0, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextID(tt.nowMilli, tt.lastID); got != tt.want {
				t.Errorf("NextID(%d, %d) = %d, want %d", tt.nowMilli, tt.lastID, got, tt.want)
			}
		})
	}
}
