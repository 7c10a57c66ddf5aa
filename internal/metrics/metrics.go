package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	AccessTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobsapi_access_total",
			Help: "Access gate decisions by gate and outcome",
		},
		[]string{"gate", "outcome"}, // auth|throttle , allowed|unauthorized|throttled
	)

	JobsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobsapi_jobs_created_total",
			Help: "Jobs inserted into the store since process start",
		},
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		AccessTotal,
		JobsCreatedTotal,
	)
}
