package payswitch

// Client instrumentation generated in the style of the gowrap prometheus
// template.

import (
	"context"
	"time"

	"github.com/payswitch-intl/payswitch-go/payment"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ClientWithPrometheus implements Client interface with all methods wrapped
// with Prometheus metrics
type ClientWithPrometheus struct {
	base         Client
	instanceName string
}

var clientDurationSummaryVec = promauto.NewSummaryVec(
	prometheus.SummaryOpts{
		Name:       "payswitch_client_duration_seconds",
		Help:       "client runtime duration and result",
		MaxAge:     time.Minute,
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	},
	[]string{"instance_name", "method", "result"})

// NewClientWithPrometheus returns an instance of the Client decorated with prometheus summary metric
func NewClientWithPrometheus(base Client, instanceName string) ClientWithPrometheus {
	return ClientWithPrometheus{
		base:         base,
		instanceName: instanceName,
	}
}

// GetTxnToken implements Client
func (_d ClientWithPrometheus) GetTxnToken(ctx context.Context, params payment.TokenParams) (tp1 *TokenResult, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "GetTxnToken", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.GetTxnToken(ctx, params)
}

// GetTxnStatus implements Client
func (_d ClientWithPrometheus) GetTxnStatus(ctx context.Context, q *StatusQuery) (tp1 *TxnStatus, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "GetTxnStatus", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.GetTxnStatus(ctx, q)
}

// CancelTxn implements Client
func (_d ClientWithPrometheus) CancelTxn(ctx context.Context, q *CancelQuery) (cp1 *CancelResult, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "CancelTxn", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.CancelTxn(ctx, q)
}
