// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Uploads counts successfully stored objects.
	Uploads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "iconhub_uploads_total",
		Help: "Successful icon uploads.",
	})
	// Renames counts completed copy-then-delete renames.
	Renames = promauto.NewCounter(prometheus.CounterOpts{
		Name: "iconhub_renames_total",
		Help: "Successful icon renames.",
	})
	// Deletes counts removed objects.
	Deletes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "iconhub_deletes_total",
		Help: "Successful icon deletes.",
	})
	// Refreshes counts manual manifest rebuilds.
	Refreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "iconhub_manifest_refreshes_total",
		Help: "Manual manifest refreshes.",
	})
	// ThumbRequests counts thumbnail renders by cache outcome (hit|miss).
	ThumbRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "iconhub_thumbnail_requests_total",
		Help: "Thumbnail requests by edge-cache outcome.",
	}, []string{"result"})
)
