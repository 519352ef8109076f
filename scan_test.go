// FILE: lixenwraith/ini/scan_test.go
package ini

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverSection struct {
	Host    string        `ini:"host"`
	Port    int           `ini:"port"`
	Debug   bool          `ini:"debug"`
	Ratio   float64       `ini:"ratio"`
	Timeout time.Duration `ini:"timeout"`
	Tags    []string      `ini:"tags"`
	Mode    Char          `ini:"mode"`
	Skipped string        `ini:"-"`
	hidden  int
}

// TestScan tests decoding a group into a struct
func TestScan(t *testing.T) {
	t.Run("AllFieldKinds", func(t *testing.T) {
		f := newFile("unused.ini", DefaultOptions())
		recs, err := Decode(strings.NewReader("[Server]\nhost=example.com\nport=9000\ndebug=1\nratio=0.75\ntimeout=2m30s\ntags=a,b,c\nmode=Fast"), nil)
		require.NoError(t, err)
		f.store = NewStore(recs...)

		var s serverSection
		require.NoError(t, f.Scan("Server", &s))
		assert.Equal(t, "example.com", s.Host)
		assert.Equal(t, 9000, s.Port)
		assert.True(t, s.Debug)
		assert.Equal(t, 0.75, s.Ratio)
		assert.Equal(t, 150*time.Second, s.Timeout)
		assert.Equal(t, []string{"a", "b", "c"}, s.Tags)
		assert.Equal(t, Char('F'), s.Mode)
	})

	t.Run("BoolFollowsReadRule", func(t *testing.T) {
		f := newFile("unused.ini", DefaultOptions())
		Write(f, "Server", "debug", "true", false)

		s := serverSection{Debug: true}
		require.NoError(t, f.Scan("Server", &s))
		assert.False(t, s.Debug)
	})

	t.Run("MissingKeysKeepValues", func(t *testing.T) {
		f := newFile("unused.ini", DefaultOptions())
		Write(f, "Server", "port", 1, false)

		s := serverSection{Host: "localhost", Port: 8080}
		require.NoError(t, f.Scan("Server", &s))
		assert.Equal(t, "localhost", s.Host)
		assert.Equal(t, 1, s.Port)
	})

	t.Run("FirstDuplicateWins", func(t *testing.T) {
		f := newFile("unused.ini", DefaultOptions())
		f.store = NewStore(
			Record{Group: "[Server]", Key: "port", Value: "1"},
			Record{Group: "[Server]", Key: "port", Value: "2"},
		)
		var s serverSection
		require.NoError(t, f.Scan("Server", &s))
		assert.Equal(t, 1, s.Port)
	})

	t.Run("IntoMap", func(t *testing.T) {
		f := newFile("unused.ini", DefaultOptions())
		f.store = NewStore(sampleRecords()...)

		m := map[string]string{}
		require.NoError(t, f.Scan("A", &m))
		assert.Equal(t, map[string]string{"x": "1", "y": "2"}, m)
	})

	t.Run("Errors", func(t *testing.T) {
		f := newFile("unused.ini", DefaultOptions())
		Write(f, "Server", "port", "eighty", false)

		var s serverSection
		assert.ErrorIs(t, f.Scan("Server", &s), ErrParse)
		assert.Error(t, f.Scan("Server", s))
		assert.Error(t, f.Scan("Server", nil))
	})
}

// TestWriteStruct tests writing struct fields as a group
func TestWriteStruct(t *testing.T) {
	t.Run("DeclarationOrder", func(t *testing.T) {
		f := newFile("unused.ini", DefaultOptions())
		src := serverSection{
			Host:    "localhost",
			Port:    8080,
			Debug:   true,
			Ratio:   0.5,
			Timeout: 30 * time.Second,
			Tags:    []string{"a", "b"},
			Mode:    'S',
			Skipped: "never",
			hidden:  1,
		}
		require.NoError(t, f.WriteStruct("Server", &src, false))

		assert.Equal(t, []Record{
			{Group: "[Server]", Key: "host", Value: "localhost"},
			{Group: "[Server]", Key: "port", Value: "8080"},
			{Group: "[Server]", Key: "debug", Value: "1"},
			{Group: "[Server]", Key: "ratio", Value: "0.5"},
			{Group: "[Server]", Key: "timeout", Value: "30s"},
			{Group: "[Server]", Key: "tags", Value: "a,b"},
			{Group: "[Server]", Key: "mode", Value: "S"},
		}, f.Store().Records())

		var back serverSection
		require.NoError(t, f.Scan("Server", &back))
		src.Skipped, src.hidden = "", 0
		assert.Equal(t, src, back)
	})

	t.Run("RespectsUpdateFlag", func(t *testing.T) {
		f := newFile("unused.ini", DefaultOptions())
		Write(f, "Server", "port", 1, false)

		require.NoError(t, f.WriteStruct("Server", serverSection{Port: 2}, false))
		port, _ := Read[int](f, "Server", "port")
		assert.Equal(t, 1, port)

		require.NoError(t, f.WriteStruct("Server", serverSection{Port: 3}, true))
		port, _ = Read[int](f, "Server", "port")
		assert.Equal(t, 3, port)
	})

	t.Run("PointerFields", func(t *testing.T) {
		type pointers struct {
			When    *time.Time     `ini:"when"`
			Limit   *int           `ini:"limit"`
			Extra   any            `ini:"extra"`
			Timeout *time.Duration `ini:"timeout"`
		}
		limit := 5
		timeout := 2 * time.Second

		f := newFile("unused.ini", DefaultOptions())
		require.NotPanics(t, func() {
			require.NoError(t, f.WriteStruct("G", pointers{Limit: &limit, Timeout: &timeout}, false))
		})
		assert.Equal(t, []Record{
			{Group: "[G]", Key: "when", Value: ""},
			{Group: "[G]", Key: "limit", Value: "5"},
			{Group: "[G]", Key: "extra", Value: ""},
			{Group: "[G]", Key: "timeout", Value: "2s"},
		}, f.Store().Records())

		when := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, f.WriteStruct("G", pointers{When: &when, Extra: true}, true))
		text, _ := Read[string](f, "G", "when")
		assert.Equal(t, when.String(), text)
		extra, _ := Read[bool](f, "G", "extra")
		assert.True(t, extra)
	})

	t.Run("RejectsNonStruct", func(t *testing.T) {
		f := newFile("unused.ini", DefaultOptions())
		assert.Error(t, f.WriteStruct("G", 42, false))
		assert.Error(t, f.WriteStruct("G", (*serverSection)(nil), false))

		type nested struct {
			Inner struct{ A int }
			Name  string
		}
		err := f.WriteStruct("G", nested{Name: "n"}, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Inner")
		assert.True(t, f.Has("G", "Name"), "valid fields are still written")
	})
}
