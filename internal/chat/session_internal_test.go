package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnitTypingDuration(t *testing.T) {
	tests := map[string]struct {
		reply string
		want  time.Duration
	}{
		"short reply clamps to minimum": {
			reply: "Hi!",
			want:  1500 * time.Millisecond,
		},
		"medium reply scales with length": {
			reply: strings.Repeat("a", 100), // 100 chars * 20ms
			want:  2000 * time.Millisecond,
		},
		"long reply clamps to maximum": {
			reply: strings.Repeat("a", 500),
			want:  4000 * time.Millisecond,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, typingDuration(tt.reply), "should derive duration from reply length")
		})
	}
}

func TestUnitNewMessageID(t *testing.T) {
	now := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	first := newMessageID(now)
	second := newMessageID(now)

	assert.True(t, strings.HasPrefix(first, "1709287200000-"), "id should start with the unix millisecond timestamp")
	assert.NotEqual(t, first, second, "ids on the same millisecond should still differ")
}
