package observers_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	zapobserver "go.uber.org/zap/zaptest/observer"

	"github.com/kazakovdmitriy/go-idioms/internal/observers"
	"github.com/kazakovdmitriy/go-idioms/internal/service/signerservice"
)

func TestLogObserver_Update(t *testing.T) {
	core, logs := zapobserver.New(zapcore.DebugLevel)
	obs := observers.NewLogObserver(zap.New(core))

	err := obs.Update("register", map[string]any{"username": "x"})
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "LogObserver", entries[0].LoggerName)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "register", entries[0].ContextMap()["event_type"])
}

func TestLogObserver_UpdateBelowLoggerLevel(t *testing.T) {
	core, logs := zapobserver.New(zapcore.WarnLevel)
	obs := observers.NewLogObserver(zap.New(core))

	require.NoError(t, obs.Update("register", map[string]any{"username": "x"}))
	assert.Zero(t, logs.Len())
}

func TestMailObserver_Update(t *testing.T) {
	var buf bytes.Buffer
	obs := observers.NewMailObserver(&buf)

	err := obs.Update("register", map[string]any{"username": "x"})
	require.NoError(t, err)

	expected := "\n    MailObserver: This is a Mail event\n    event_type=\"register\"\n    data=map[username:x]\n"
	assert.Equal(t, expected, buf.String())
}

func TestSlackObserver_Update(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		data      map[string]any
		want      string
		wantErr   error
	}{
		{
			name:      "register",
			eventType: observers.EventRegister,
			data:      map[string]any{"username": "jdoe"},
			want:      "SlackObserver: The user jdoe have been registered!\n",
		},
		{
			name:      "unregister",
			eventType: observers.EventUnregister,
			data:      map[string]any{"username": "jdoe"},
			want:      "SlackObserver: The user jdoe have quit\n",
		},
		{
			name:      "unknown event is ignored",
			eventType: "login",
			data:      map[string]any{"username": "jdoe"},
			want:      "",
		},
		{
			name:      "unknown event without username is ignored",
			eventType: "login",
			data:      nil,
			want:      "",
		},
		{
			name:      "missing username",
			eventType: observers.EventRegister,
			data:      map[string]any{"mail": "jdoe@example.com"},
			wantErr:   observers.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			obs := observers.NewSlackObserver(&buf)

			err := obs.Update(tt.eventType, tt.data)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, buf.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFileObserver_Update(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	obs, err := observers.NewFileObserver(path, zaptest.NewLogger(t))
	require.NoError(t, err)

	require.NoError(t, obs.Update(observers.EventRegister, map[string]any{"username": "x"}))
	require.NoError(t, obs.Update(observers.EventUnregister, map[string]any{"username": "y"}))
	require.NoError(t, obs.Close())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var records []map[string]any
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var record map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		records = append(records, record)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, records, 2)

	assert.Equal(t, "register", records[0]["event_type"])
	assert.Equal(t, map[string]any{"username": "x"}, records[0]["data"])
	assert.NotEmpty(t, records[0]["id"])
	assert.NotEqual(t, records[0]["id"], records[1]["id"])
	assert.Equal(t, "unregister", records[1]["event_type"])
}

func TestFileObserver_UpdateAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	obs, err := observers.NewFileObserver(path, zaptest.NewLogger(t))
	require.NoError(t, err)

	require.NoError(t, obs.Close())
	assert.NoError(t, obs.Close())

	err = obs.Update(observers.EventRegister, map[string]any{"username": "x"})
	assert.ErrorIs(t, err, observers.ErrObserverClosed)
}

func TestNewFileObserver_InvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "audit.log")
	_, err := observers.NewFileObserver(path, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestHTTPObserver_Update(t *testing.T) {
	signer := signerservice.NewSHA256Signer("secret")

	var gotBody []byte
	var gotHash, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotHash = r.Header.Get("HashSHA256")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	obs := observers.NewHTTPObserver(srv.URL, signer, zaptest.NewLogger(t))
	err := obs.Update(observers.EventRegister, map[string]any{"username": "x"})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.True(t, signer.Verify(gotBody, gotHash))

	var record map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &record))
	assert.Equal(t, "register", record["event_type"])
	assert.Equal(t, map[string]any{"username": "x"}, record["data"])
}

func TestHTTPObserver_UpdateWithoutSigner(t *testing.T) {
	var gotHash string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHash = r.Header.Get("HashSHA256")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	obs := observers.NewHTTPObserver(srv.URL, nil, zaptest.NewLogger(t))
	require.NoError(t, obs.Update(observers.EventUnregister, map[string]any{"username": "x"}))
	assert.Empty(t, gotHash)
}

func TestHTTPObserver_UpdateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	obs := observers.NewHTTPObserver(srv.URL, nil, zaptest.NewLogger(t))
	err := obs.Update(observers.EventRegister, map[string]any{"username": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
