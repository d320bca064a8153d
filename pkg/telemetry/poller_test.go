package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/roboclaw/pkg/comm"
	"github.com/robotalks/roboclaw/pkg/roboclaw"
)

type fakeController struct {
	replies map[roboclaw.Opcode][]byte
	readCh  chan byte
}

func (c *fakeController) Write(p []byte) (int, error) {
	for _, b := range c.replies[roboclaw.Opcode(p[1])] {
		c.readCh <- b
	}
	return len(p), nil
}

func (c *fakeController) Read(p []byte) (int, error) {
	b, ok := <-c.readCh
	if !ok {
		return 0, io.EOF
	}
	p[0] = b
	return 1, nil
}

var encoderBytes = []byte{0x00, 0x00, 0x01, 0x00, 0xff, 0xff, 0xff, 0x00}

func newTestDispatcher(t *testing.T) *comm.Dispatcher {
	link := &fakeController{
		readCh: make(chan byte, 256),
		replies: map[roboclaw.Opcode][]byte{
			roboclaw.OpReadStatus:             {0x00, 0x05},
			roboclaw.OpReadMainBatteryVoltage: {0x00, 0x7b},
			// logic battery never answers
			roboclaw.OpReadMotorCurrents: {0x01, 0x2c, 0x00, 0x32},
			roboclaw.OpReadTemperature:   {0x01, 0x01},
			roboclaw.OpReadEncoderCounts: encoderBytes,
			roboclaw.OpReadRawSpeeds:     {0x00, 0x00, 0x00, 0x64, 0xff, 0xff, 0xff, 0x9c},
		},
	}
	d := comm.NewDispatcher(link)
	d.Timeout = 20 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	go d.Run(ctx)
	t.Cleanup(cancel)
	return d
}

func TestPoll(t *testing.T) {
	p := &Poller{Dispatcher: newTestDispatcher(t), Address: 0x80}
	s, err := p.Poll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, comm.ErrTimeout))

	assert.Equal(t, byte(0x80), s.Address)
	assert.Equal(t, uint16(5), s.Status)
	assert.Equal(t, roboclaw.ControllerStatus(5).Flags(), s.Flags)
	assert.Equal(t, 12.3, s.MainBattery)
	assert.Zero(t, s.LogicBattery)
	assert.Equal(t, roboclaw.Both(3.0, 0.5), s.Currents)
	assert.Equal(t, 25.7, s.Temperature)
	encoders, err := roboclaw.ReadEncoderCounts(0x80).Decode(encoderBytes)
	require.NoError(t, err)
	assert.Equal(t, encoders, s.Encoders)
	assert.Equal(t, roboclaw.Both[roboclaw.Frequency](100, -100), s.Speeds)
	require.Len(t, s.Errors, 1)
	assert.Contains(t, s.Errors[0], "logic battery")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, 12.3, m["main_battery_v"])
	assert.Equal(t, map[string]interface{}{"channel1": 3.0, "channel2": 0.5}, m["currents_a"])
	assert.Len(t, m["errors"], 1)
}

func TestRunPublishes(t *testing.T) {
	snapshots := make(chan *Snapshot, 4)
	p := &Poller{
		Dispatcher: newTestDispatcher(t),
		Address:    0x80,
		Interval:   10 * time.Millisecond,
		Sink: SinkFunc(func(ctx context.Context, s *Snapshot) error {
			select {
			case snapshots <- s:
			default:
			}
			return nil
		}),
	}
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(ctx) }()
	for i := 0; i < 2; i++ {
		select {
		case s := <-snapshots:
			assert.Equal(t, 25.7, s.Temperature)
		case <-time.After(time.Second):
			t.Fatal("no snapshot published")
		}
	}
	cancel()
	assert.Equal(t, context.Canceled, <-errCh)
}

func TestRunStopsOnClosedDispatcher(t *testing.T) {
	link := &fakeController{readCh: make(chan byte)}
	close(link.readCh)
	d := comm.NewDispatcher(link)
	require.Error(t, d.Run(context.Background()))

	p := &Poller{Dispatcher: d, Address: 0x80}
	assert.Equal(t, comm.ErrClosed, p.Run(context.Background()))
}
