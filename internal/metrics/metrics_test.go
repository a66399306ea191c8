package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.RecordIngestion(OutcomeSuccess, 0.2)
	r.RecordIngestion(OutcomeSuccess, 0.1)
	r.RecordIngestion(OutcomeInvalidPayload, 0.01)
	r.RecordEntries(3, 1, 0)
	r.RecordStandings()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.ingestions.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ingestions.WithLabelValues(OutcomeInvalidPayload)))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.entries.WithLabelValues(EntryUpserted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.entries.WithLabelValues(EntrySkipped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.standingsServed))
}

func TestRecorderNilSafe(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.RecordIngestion(OutcomeError, 1)
		r.RecordEntries(1, 1, 1)
		r.RecordStandings()
	})
}

func TestHandler(t *testing.T) {
	r := NewRecorder()
	r.RecordIngestion(OutcomeSuccess, 0.5)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `league_results_ingestions_total{outcome="success"} 1`))
}
