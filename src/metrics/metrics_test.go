package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObservePage(t *testing.T) {
	usable := testutil.ToFloat64(Pages.WithLabelValues("true"))
	unusable := testutil.ToFloat64(Pages.WithLabelValues("false"))

	ObservePage(true)
	ObservePage(true)
	ObservePage(false)

	assert.Equal(t, usable+2, testutil.ToFloat64(Pages.WithLabelValues("true")))
	assert.Equal(t, unusable+1, testutil.ToFloat64(Pages.WithLabelValues("false")))
}

func TestHandler(t *testing.T) {
	ItemsDownloaded.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "codeharvest_items_downloaded_total"))
}
