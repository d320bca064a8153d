// Package telemetry periodically reads controller state.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/roboclaw/pkg/comm"
	fx "github.com/robotalks/roboclaw/pkg/framework"
	"github.com/robotalks/roboclaw/pkg/roboclaw"
)

// Snapshot is the controller state read in one poll. Failed reads leave
// their fields zero and are listed in Errors.
type Snapshot struct {
	Time         time.Time                                   `json:"time"`
	Address      byte                                        `json:"address"`
	Status       uint16                                      `json:"status"`
	Flags        []string                                    `json:"flags,omitempty"`
	MainBattery  float64                                     `json:"main_battery_v"`
	LogicBattery float64                                     `json:"logic_battery_v"`
	Currents     roboclaw.TwoChannelData[float64]            `json:"currents_a"`
	Temperature  float64                                     `json:"temperature_c"`
	Encoders     roboclaw.TwoChannelData[uint32]             `json:"encoders"`
	Speeds       roboclaw.TwoChannelData[roboclaw.Frequency] `json:"speeds"`
	Errors       []string                                    `json:"errors,omitempty"`
}

// Sink receives snapshots.
type Sink interface {
	Publish(ctx context.Context, s *Snapshot) error
}

// SinkFunc is the func form of Sink.
type SinkFunc func(context.Context, *Snapshot) error

// Publish implements Sink.
func (f SinkFunc) Publish(ctx context.Context, s *Snapshot) error {
	return f(ctx, s)
}

// DefaultInterval is used when Poller.Interval is zero.
const DefaultInterval = time.Second

// Poller reads a Snapshot every Interval and hands it to Sink.
type Poller struct {
	Dispatcher *comm.Dispatcher
	Address    byte
	Interval   time.Duration
	Sink       Sink
}

// Name implements framework.Named.
func (p *Poller) Name() string {
	return fmt.Sprintf("telemetry-%#x", p.Address)
}

// Run implements framework.Runnable. It stops with comm.ErrClosed once the
// dispatcher is gone.
func (p *Poller) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		s, err := p.Poll(ctx)
		if errors.Is(err, comm.ErrClosed) {
			return comm.ErrClosed
		}
		if p.Sink != nil {
			if err := p.Sink.Publish(ctx, s); err != nil {
				glog.Warningf("publish telemetry error: %v", err)
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Poll reads one Snapshot. All reads are queued at once and the returned
// error aggregates the failed ones.
func (p *Poller) Poll(ctx context.Context) (*Snapshot, error) {
	d, addr := p.Dispatcher, p.Address
	s := &Snapshot{Time: time.Now(), Address: addr}

	status := comm.Do(ctx, d, roboclaw.ReadStatus(addr))
	mainBattery := comm.Do(ctx, d, roboclaw.ReadMainBatteryVoltage(addr))
	logicBattery := comm.Do(ctx, d, roboclaw.ReadLogicBatteryVoltage(addr))
	currents := comm.Do(ctx, d, roboclaw.ReadMotorCurrents(addr))
	temperature := comm.Do(ctx, d, roboclaw.ReadTemperature(addr))
	encoders := comm.Do(ctx, d, roboclaw.ReadEncoderCounts(addr))
	speeds := comm.Do(ctx, d, roboclaw.ReadRawSpeeds(addr))

	var errs fx.AggregatedError
	collect(ctx, &errs, "status", status, func(v roboclaw.ControllerStatus) {
		s.Status, s.Flags = uint16(v), v.Flags()
	})
	collect(ctx, &errs, "main battery", mainBattery, func(v roboclaw.Voltage) {
		s.MainBattery = v.Volts()
	})
	collect(ctx, &errs, "logic battery", logicBattery, func(v roboclaw.Voltage) {
		s.LogicBattery = v.Volts()
	})
	collect(ctx, &errs, "currents", currents, func(v roboclaw.TwoChannelData[roboclaw.Current]) {
		s.Currents = roboclaw.Both(v.Channel1.Amps(), v.Channel2.Amps())
	})
	collect(ctx, &errs, "temperature", temperature, func(v roboclaw.Temperature) {
		s.Temperature = v.Celsius()
	})
	collect(ctx, &errs, "encoders", encoders, func(v roboclaw.TwoChannelData[uint32]) {
		s.Encoders = v
	})
	collect(ctx, &errs, "speeds", speeds, func(v roboclaw.TwoChannelData[roboclaw.Frequency]) {
		s.Speeds = v
	})

	if err := errs.Aggregate(); err != nil {
		s.Errors = errs.Strings()
		glog.Warningf("telemetry %#x: %v", addr, err)
		return s, err
	}
	return s, nil
}

func collect[T any](ctx context.Context, errs *fx.AggregatedError, name string, f *comm.Future[T], apply func(T)) {
	v, err := f.Wait(ctx)
	if err != nil {
		errs.Add(fmt.Errorf("%s: %w", name, err))
		return
	}
	apply(v)
}
