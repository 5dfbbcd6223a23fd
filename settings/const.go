package settings

import (
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024
	LOOP_DELAY           = 10 * time.Millisecond
	JITTER_MA_LENGTH     = 100
)
