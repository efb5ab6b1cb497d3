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

package filter

import (
	"go.uber.org/zap"

	"github.com/cloudwego/callctx/metrics"
)

type Options struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func defaultOptions() Options {
	return Options{
		logger: zap.NewNop(),
	}
}

type Option func(options *Options)

func WithLogger(logger *zap.Logger) Option {
	return func(options *Options) {
		if logger != nil {
			options.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(options *Options) {
		options.metrics = m
	}
}

func buildOptions(opts []Option) Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
