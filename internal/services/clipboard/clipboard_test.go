package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockWriter implements Writer for testing
type mockWriter struct {
	err   error
	calls []string
}

func (m *mockWriter) WriteAll(text string) error {
	m.calls = append(m.calls, text)
	return m.err
}

func TestService_Copy(t *testing.T) {
	tests := []struct {
		name       string
		errs       []error
		want       bool
		wantCalled []int
	}{
		{
			name:       "first writer succeeds",
			errs:       []error{nil, nil},
			want:       true,
			wantCalled: []int{1, 0},
		},
		{
			name:       "falls back to second writer",
			errs:       []error{ErrUnsupported, nil},
			want:       true,
			wantCalled: []int{1, 1},
		},
		{
			name:       "all writers fail",
			errs:       []error{errors.New("xclip missing"), errors.New("no tty")},
			want:       false,
			wantCalled: []int{1, 1},
		},
		{
			name: "no writers",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := make([]*mockWriter, len(tt.errs))
			writers := make([]Writer, len(tt.errs))
			for i, err := range tt.errs {
				mocks[i] = &mockWriter{err: err}
				writers[i] = mocks[i]
			}

			svc := NewService(slog.Default(), writers...)
			got := svc.Copy(context.Background(), "Rp 25.000")

			assert.Equal(t, tt.want, got)
			for i, m := range mocks {
				assert.Len(t, m.calls, tt.wantCalled[i], "writer %d", i)
			}
		})
	}
}

func TestService_Copy_CanceledContext(t *testing.T) {
	m := &mockWriter{}
	svc := NewService(slog.Default(), m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, svc.Copy(ctx, "text"))
	assert.Empty(t, m.calls)
}

func TestOSC52Writer(t *testing.T) {
	var buf bytes.Buffer
	w := OSC52Writer{Out: &buf}

	assert.NoError(t, w.WriteAll("halo"))

	out := buf.String()
	assert.Contains(t, out, "\x1b]52;c;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("halo")))
}

func TestOSC52Writer_Tmux(t *testing.T) {
	var buf bytes.Buffer
	w := OSC52Writer{Out: &buf, Tmux: true}

	assert.NoError(t, w.WriteAll("halo"))
	assert.Contains(t, buf.String(), "\x1bPtmux;")
}

func TestOSC52Writer_NoOutput(t *testing.T) {
	assert.ErrorIs(t, OSC52Writer{}.WriteAll("halo"), ErrUnsupported)
}
