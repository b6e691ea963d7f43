package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_enqueued_total",
			Help: "Total number of lifecycle events accepted into the queue",
		},
		[]string{"type"},
	)

	NotificationsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_dropped_total",
			Help: "Total number of lifecycle events dropped because the queue was full",
		},
		[]string{"type"},
	)

	NotificationsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_published_total",
			Help: "Total number of lifecycle events published to the broker",
		},
		[]string{"type"},
	)

	NotificationPublishErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_publish_errors_total",
			Help: "Total number of publish failures, events are dropped after a failure",
		},
		[]string{"type"},
	)
)
