package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	StoreReads     prometheus.Counter
	StoreWrites    prometheus.Counter
	StoreDeletes   prometheus.Counter
	DecodeFailures prometheus.Counter

	LoginSuccess prometheus.Counter
	LoginFailure prometheus.Counter
	AdminLogins  prometheus.Counter
	Signups      prometheus.Counter

	OrdersSubmitted   prometheus.Counter
	ChangelogAppended prometheus.Counter
	SnapshotAgeSec    prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	reads := prometheus.NewCounter(prometheus.CounterOpts{Name: "phoenixarts_store_reads_total"})
	writes := prometheus.NewCounter(prometheus.CounterOpts{Name: "phoenixarts_store_writes_total"})
	deletes := prometheus.NewCounter(prometheus.CounterOpts{Name: "phoenixarts_store_deletes_total"})
	decodeFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "phoenixarts_store_decode_failures_total"})

	loginOK := prometheus.NewCounter(prometheus.CounterOpts{Name: "phoenixarts_login_success_total"})
	loginBad := prometheus.NewCounter(prometheus.CounterOpts{Name: "phoenixarts_login_failure_total"})
	adminLogins := prometheus.NewCounter(prometheus.CounterOpts{Name: "phoenixarts_admin_logins_total"})
	signups := prometheus.NewCounter(prometheus.CounterOpts{Name: "phoenixarts_signups_total"})

	submitted := prometheus.NewCounter(prometheus.CounterOpts{Name: "phoenixarts_orders_submitted_total"})
	appended := prometheus.NewCounter(prometheus.CounterOpts{Name: "phoenixarts_changelog_appended_total"})
	snapAge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "phoenixarts_last_snapshot_age_seconds"})

	r.MustRegister(reads, writes, deletes, decodeFailures, loginOK, loginBad, adminLogins, signups, submitted, appended, snapAge)
	return &Registry{
		reg:               r,
		StoreReads:        reads,
		StoreWrites:       writes,
		StoreDeletes:      deletes,
		DecodeFailures:    decodeFailures,
		LoginSuccess:      loginOK,
		LoginFailure:      loginBad,
		AdminLogins:       adminLogins,
		Signups:           signups,
		OrdersSubmitted:   submitted,
		ChangelogAppended: appended,
		SnapshotAgeSec:    snapAge,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
