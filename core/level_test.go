package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	t.Parallel()

	tcs := map[Level]string{
		TraceLevel: "TRACE",
		DebugLevel: "DEBUG",
		InfoLevel:  "INFO",
		WarnLevel:  "WARN",
		ErrorLevel: "ERROR",
		FatalLevel: "FATAL",
		PanicLevel: "PANIC",
		OffLevel:   "OFF",
		Level(42):  "UNKNOWN",
	}

	for level, want := range tcs {
		assert.Equal(t, want, level.String())
	}
}

func TestLevel_Ordering(t *testing.T) {
	t.Parallel()

	assert.Less(t, TraceLevel, DebugLevel)
	assert.Less(t, DebugLevel, InfoLevel)
	assert.Less(t, InfoLevel, WarnLevel)
	assert.Less(t, WarnLevel, ErrorLevel)
	assert.Less(t, ErrorLevel, FatalLevel)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		in      string
		want    Level
		wantErr error
	}{
		"trace":         {in: "trace", want: TraceLevel},
		"upper debug":   {in: "DEBUG", want: DebugLevel},
		"warning alias": {in: "warning", want: WarnLevel},
		"padded":        {in: " error ", want: ErrorLevel},
		"off":           {in: "off", want: OffLevel},
		"unknown":       {in: "loud", want: InfoLevel, wantErr: ErrUnknownLevel},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

// Not parallel: mutates the process-wide filter.
func TestEnabled(t *testing.T) {
	prev := MaxLevel()
	t.Cleanup(func() { SetMaxLevel(prev) })

	SetMaxLevel(WarnLevel)
	assert.False(t, Enabled(InfoLevel))
	assert.True(t, Enabled(WarnLevel))
	assert.True(t, Enabled(ErrorLevel))

	SetMaxLevel(TraceLevel)
	assert.True(t, Enabled(TraceLevel))

	SetMaxLevel(OffLevel)
	assert.False(t, Enabled(PanicLevel))
	assert.False(t, Enabled(OffLevel))
}
