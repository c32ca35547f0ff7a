package log_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/chatwin/pkg/log"
)

func entries(r *log.Ring) []string {
	out := []string{}
	for _, e := range r.Entries() {
		out = append(out, string(e))
	}

	return out
}

func TestRing_Write(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		writes      []string
		want        []string
		size        int
		wantDropped int
	}{
		"empty": {
			size: 3,
			want: []string{},
		},
		"partial": {
			size:   3,
			writes: []string{"a", "b"},
			want:   []string{"a", "b"},
		},
		"exactly full": {
			size:   3,
			writes: []string{"a", "b", "c"},
			want:   []string{"a", "b", "c"},
		},
		"wraps": {
			size:        3,
			writes:      []string{"a", "b", "c", "d", "e"},
			want:        []string{"c", "d", "e"},
			wantDropped: 2,
		},
		"empty writes ignored": {
			size:   2,
			writes: []string{"a", "", "b"},
			want:   []string{"a", "b"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := log.NewRing(tc.size)
			for _, w := range tc.writes {
				n, err := r.Write([]byte(w))
				require.NoError(t, err)
				assert.Equal(t, len(w), n)
			}

			assert.Equal(t, tc.want, entries(r))
			assert.Equal(t, len(tc.want), r.Len())
			assert.Equal(t, tc.wantDropped, r.Dropped())
		})
	}
}

func TestRing_DefaultSize(t *testing.T) {
	t.Parallel()

	r := log.NewRing(0)
	for i := range log.DefaultRingSize + 1 {
		_, err := fmt.Fprintf(r, "%d", i)
		require.NoError(t, err)
	}

	assert.Equal(t, log.DefaultRingSize, r.Len())
	assert.Equal(t, 1, r.Dropped())
}

func TestRing_CopiesInput(t *testing.T) {
	t.Parallel()

	r := log.NewRing(2)
	p := []byte("abc")

	_, err := r.Write(p)
	require.NoError(t, err)

	p[0] = 'x'

	got := r.Entries()
	assert.Equal(t, "abc", string(got[0]))

	got[0][0] = 'y'
	assert.Equal(t, []string{"abc"}, entries(r))
}

func TestRing_Flush(t *testing.T) {
	t.Parallel()

	r := log.NewRing(2)
	for _, s := range []string{"one\n", "two\n", "three\n"} {
		_, err := r.Write([]byte(s))
		require.NoError(t, err)
	}

	var buf bytes.Buffer

	n, err := r.Flush(&buf)
	require.NoError(t, err)

	assert.Equal(t, "... 1 earlier log entries dropped\ntwo\nthree\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
	assert.Zero(t, r.Len())
	assert.Zero(t, r.Dropped())

	buf.Reset()

	_, err = r.Flush(&buf)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestRing_Concurrent(t *testing.T) {
	t.Parallel()

	r := log.NewRing(50)
	logger := slog.New(log.NewHandler(r, log.Options{Format: log.FormatLogfmt, Level: slog.LevelInfo}))

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := range 20 {
				logger.Info("write", slog.Int("worker", i), slog.Int("n", j))
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 50, r.Len())
	assert.Equal(t, 150, r.Dropped())
}
