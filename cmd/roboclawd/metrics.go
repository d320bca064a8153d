package main

import (
	"context"
	"net/http"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robotalks/roboclaw/pkg/framework"
)

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// metricsServer serves reg on /metrics until canceled.
func metricsServer(addr string, reg *prometheus.Registry) framework.Runnable {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux}
	return framework.NamedRun("metrics", framework.RunFunc(func(ctx context.Context) error {
		glog.Infof("serving metrics on %s", addr)
		return framework.RunWithContextCancel(ctx, func() {
			srv.Shutdown(context.Background())
		}, srv.ListenAndServe)
	}))
}
