//go:build linux

package transceiver

import (
	"fmt"
	"io"
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// linuxPort is a raw termios-configured serial port, opened directly
// instead of through tarm/serial so WriteReply can drive a genuine
// RS-485 break condition via TIOCSBRK/TIOCCBRK. Grounded on
// cmd/controller/debug_rpi.go's openSerial, which configures termios
// the same way via a raw TCSETS ioctl on the file's syscall.Conn.
type linuxPort struct {
	f *os.File
}

func openPort(dev string, baud uint32) (io.ReadWriteCloser, error) {
	f, err := os.OpenFile(dev, unix.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, err
	}
	conn, err := f.SyscallConn()
	if err != nil {
		f.Close()
		return nil, err
	}
	var ctrlErr error
	err = conn.Control(func(fd uintptr) {
		t := unix.Termios{
			Iflag:  unix.IGNPAR,
			Cflag:  unix.CREAD | unix.CLOCAL | unix.CS8 | unix.CSTOPB,
			Ispeed: baud,
			Ospeed: baud,
		}
		t.Cc[unix.VMIN] = 1
		t.Cc[unix.VTIME] = 0
		if _, _, errno := unix.Syscall6(unix.SYS_IOCTL, fd, uintptr(unix.TCSETS), uintptr(unsafe.Pointer(&t)), 0, 0, 0); errno != 0 {
			ctrlErr = errno
		}
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	if ctrlErr != nil {
		f.Close()
		return nil, fmt.Errorf("transceiver: configuring termios: %w", ctrlErr)
	}
	return &linuxPort{f: f}, nil
}

func (p *linuxPort) Read(b []byte) (int, error)  { return p.f.Read(b) }
func (p *linuxPort) Write(b []byte) (int, error) { return p.f.Write(b) }
func (p *linuxPort) Close() error                { return p.f.Close() }

// sendBreak asserts the line break for d, then clears it, via the
// TIOCSBRK/TIOCCBRK ioctls.
func (p *linuxPort) sendBreak(d time.Duration) error {
	conn, err := p.f.SyscallConn()
	if err != nil {
		return err
	}
	var ctrlErr error
	err = conn.Control(func(fd uintptr) {
		if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(unix.TIOCSBRK), 0); errno != 0 {
			ctrlErr = errno
		}
	})
	if err != nil {
		return err
	}
	if ctrlErr != nil {
		return ctrlErr
	}
	time.Sleep(d)
	return conn.Control(func(fd uintptr) {
		unix.Syscall(unix.SYS_IOCTL, fd, uintptr(unix.TIOCCBRK), 0)
	})
}
