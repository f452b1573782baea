// Command ja-rule-responderd runs an RDM responder over a Ja Rule
// USB-to-RS485 interface, presenting one of the built-in models
// (dimmer or network) to an RDM controller on the DMX512 line.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fxamacker/cbor/v2"

	"github.com/jarule/responder/gpio"
	"github.com/jarule/responder/responder"
	"github.com/jarule/responder/responder/dimmer"
	"github.com/jarule/responder/responder/network"
	"github.com/jarule/responder/transceiver"
	"github.com/jarule/responder/uid"
)

var (
	serialDev    = flag.String("device", "", "serial device (default: platform-appropriate /dev/ttyUSB*)")
	modelName    = flag.String("model", "dimmer", "responder model: dimmer or network")
	manufacturer = flag.Uint("manufacturer-id", 0x7a70, "RDM manufacturer ID")
	deviceID     = flag.Uint("device-id", 1, "RDM device ID")
	stateFile    = flag.String("dump-state", "", "file to write a CBOR state snapshot to on SIGUSR1 (default: stderr)")
	usePiGPIO    = flag.Bool("gpio", false, "drive identify/mute LEDs on Raspberry Pi GPIO17/27")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ja-rule-responderd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	rootUID := uid.UID{Manufacturer: uint16(*manufacturer), Device: uint32(*deviceID)}

	var model responder.Model
	switch *modelName {
	case "dimmer":
		model = dimmer.New(rootUID)
	case "network":
		model = network.New(rootUID)
	default:
		return fmt.Errorf("-model must be 'dimmer' or 'network', got %q", *modelName)
	}

	e := responder.NewEngine(responder.NewSystemClock(), logger)
	if *usePiGPIO {
		ind, err := gpio.OpenPi()
		if err != nil {
			return fmt.Errorf("opening GPIO indicator: %w", err)
		}
		e.SetIndicator(ind)
	}
	e.SetModel(model)

	tc, err := transceiver.Open(*serialDev)
	if err != nil {
		return fmt.Errorf("opening transceiver: %w", err)
	}
	defer tc.Close()

	dump := make(chan os.Signal, 1)
	signal.Notify(dump, syscall.SIGUSR1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		for range dump {
			if err := dumpState(e); err != nil {
				logger.Error("failed to dump state", "error", err)
			}
		}
	}()

	logger.Info("responder started", "model", *modelName, "uid", rootUID.String())
	for {
		select {
		case <-quit:
			return nil
		default:
		}

		frame, err := tc.ReadFrame()
		if err != nil {
			return fmt.Errorf("reading frame: %w", err)
		}
		if frame.StartCode != 0xcc {
			continue
		}
		e.Tasks()
		if reply := e.Receive(frame.Data); reply != nil {
			if err := tc.WriteReply(reply); err != nil {
				logger.Error("failed to write reply", "error", err)
			}
		}
	}
}

// stateSnapshot is the CBOR-encoded debug dump written on SIGUSR1: a
// point-in-time view of every responder's core state, for field
// diagnostics without a protocol analyzer.
type stateSnapshot struct {
	Root       responderSnapshot   `cbor:"root"`
	SubDevices []responderSnapshot `cbor:"sub_devices"`
}

type responderSnapshot struct {
	UID                string `cbor:"uid"`
	Index              uint16 `cbor:"index"`
	DMXStartAddress    uint16 `cbor:"dmx_start_address"`
	CurrentPersonality uint8  `cbor:"current_personality"`
	DeviceLabel        string `cbor:"device_label"`
	IsMuted            bool   `cbor:"is_muted"`
	IdentifyOn         bool   `cbor:"identify_on"`
	QueuedMessageCount uint8  `cbor:"queued_message_count"`
}

func snapshotOf(r *responder.Responder) responderSnapshot {
	return responderSnapshot{
		UID:                r.UID.String(),
		Index:              r.Index,
		DMXStartAddress:    r.DMXStartAddress,
		CurrentPersonality: r.CurrentPersonality,
		DeviceLabel:        r.DeviceLabel,
		IsMuted:            r.IsMuted,
		IdentifyOn:         r.IdentifyOn,
		QueuedMessageCount: r.QueuedMessageCount,
	}
}

func dumpState(e *responder.Engine) error {
	snap := stateSnapshot{Root: snapshotOf(e.Root)}
	for _, sd := range e.SubDevices {
		snap.SubDevices = append(snap.SubDevices, snapshotOf(sd))
	}
	data, err := cbor.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding state snapshot: %w", err)
	}
	if *stateFile == "" {
		_, err = os.Stderr.Write(data)
		return err
	}
	return os.WriteFile(*stateFile, data, 0o644)
}
