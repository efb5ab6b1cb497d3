/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cloudwego/callctx"
)

const (
	SideProvider = "provider"
	SideConsumer = "consumer"
)

// Metrics records call context activity. A nil *Metrics is a no-op.
type Metrics struct {
	calls   *prometheus.CounterVec
	dropped prometheus.Counter
}

// New registers the collectors on registerer, or on the default registerer
// when nil. The live gauge reads store.Len at scrape time.
func New(registerer prometheus.Registerer, store *callctx.Store) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if store == nil {
		store = callctx.Default
	}
	factory := promauto.With(registerer)

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "callctx_live_contexts",
			Help: "Number of workers currently holding a call context",
		},
		func() float64 { return float64(store.Len()) },
	)
	return &Metrics{
		calls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "callctx_calls_total",
				Help: "Total number of calls that went through a context filter",
			},
			[]string{"side"},
		),
		dropped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "callctx_dropped_attachments_total",
				Help: "Total number of wire attachments dropped for using a reserved key",
			},
		),
	}
}

func (m *Metrics) ObserveCall(side string) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(side).Inc()
}

func (m *Metrics) ObserveDropped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.dropped.Add(float64(n))
}
