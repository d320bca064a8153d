package main

import (
	"context"
	"encoding/json"
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/roboclaw/pkg/comm"
	"github.com/robotalks/roboclaw/pkg/env"
	"github.com/robotalks/roboclaw/pkg/framework"
	"github.com/robotalks/roboclaw/pkg/roboclaw"
	"github.com/robotalks/roboclaw/pkg/serial"
	"github.com/robotalks/roboclaw/pkg/telemetry"
	"github.com/robotalks/roboclaw/pkg/telemetry/mqtt"
)

func init() {
	env.SetupFlags()
}

func logSink(ctx context.Context, s *telemetry.Snapshot) error {
	if glog.V(1) {
		data, err := json.Marshal(s)
		if err != nil {
			return err
		}
		glog.Infof("telemetry %s", data)
	}
	return nil
}

func main() {
	flag.Parse()
	defer glog.Flush()

	conf := env.Default()
	if err := conf.Validate(); err != nil {
		glog.Exitln(err)
	}
	addr, _ := conf.ControllerAddress()

	port, err := serial.Open(&conf.Serial)
	if err != nil {
		glog.Exitln(err)
	}
	d := comm.NewDispatcher(port)
	d.Timeout = conf.Timeout
	d.ReplyTrailer = conf.ReplyTrailer

	runner := framework.NewRunner().HandleSignals()
	if conf.MetricsAddr != "" {
		reg := newRegistry()
		d.Metrics = comm.NewMetrics(reg, conf.Serial.Device)
		runner.Go(metricsServer(conf.MetricsAddr, reg))
	}
	runner.Go(framework.NamedRun("dispatcher", framework.RunFunc(func(ctx context.Context) error {
		return framework.RunWithContextCloser(ctx, port, func() error { return d.Run(ctx) })
	})))

	meta := mqtt.Meta{ID: conf.ID, Address: addr}
	if meta.Firmware, err = comm.Exec(runner.Context(), d, roboclaw.ReadFirmwareVersion(addr)); err != nil {
		glog.Warningf("read firmware version error: %v", err)
	} else {
		glog.Infof("controller %#x on %s: %s", addr, conf.Serial.Device, meta.Firmware)
	}

	var sink telemetry.Sink = telemetry.SinkFunc(logSink)
	if conf.MQTTBrokerURL != "" {
		mqttSink, err := mqtt.NewSink(conf.MQTTBrokerURL, conf.ID)
		if err != nil {
			glog.Exitln(err)
		}
		mqttSink.SetMeta(meta)
		runner.Go(mqttSink)
		sink = mqttSink
	}
	if conf.PollInterval > 0 {
		runner.Go(&telemetry.Poller{
			Dispatcher: d,
			Address:    addr,
			Interval:   conf.PollInterval,
			Sink:       sink,
		})
	}

	if err := runner.Wait(); err != nil {
		glog.Exitln(err)
	}
}
