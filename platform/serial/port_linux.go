// Package serial implements platform.DeviceIO over a Linux tty. The
// port is configured raw, 8N1, at 115200 baud. A background poller
// watches the descriptor and posts RxReady to the subscriber whenever
// bytes become available; reads and writes stay on the caller's thread.
package serial

import (
	"fmt"
	"os"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/zmolnar/go-atlink/internal/logging"
	"github.com/zmolnar/go-atlink/platform"
)

const (
	// EnvTTY names the environment variable carrying the port path.
	EnvTTY = "ATLINK_TTY"
	// DefaultPath is used when EnvTTY is unset.
	DefaultPath = "/dev/ttyUSB0"

	// pollTimeoutMs bounds the poller's block so it can observe shutdown.
	pollTimeoutMs = 100
)

// PathFromEnv resolves the port path from EnvTTY, falling back to
// DefaultPath.
func PathFromEnv() string {
	if path := os.Getenv(EnvTTY); path != "" {
		return path
	}
	return DefaultPath
}

type subscriberBox struct {
	s platform.Subscriber
}

// Port is a serial DeviceIO.
type Port struct {
	fd   int
	run  atomic.Bool
	sub  atomic.Pointer[subscriberBox]
	done chan struct{}
	log  *logging.Logger
}

// Open opens and configures the tty and starts the poller thread.
func Open(path string) (*Port, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NOCTTY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", path, err)
	}
	if err := configureRaw(fd); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("serial: configure %s: %w", path, err)
	}

	p := &Port{
		fd:   fd,
		done: make(chan struct{}),
		log:  logging.Default().WithName("serial"),
	}
	p.run.Store(true)
	go p.pollLoop()
	p.log.Infof("tty opened and configured (%s)", path)
	return p, nil
}

// Subscribe implements platform.DeviceIO.
func (p *Port) Subscribe(s platform.Subscriber) {
	p.sub.Store(&subscriberBox{s: s})
}

// Write implements platform.DeviceIO. A short count signals a send
// failure to the caller.
func (p *Port) Write(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	n, err := unix.Write(p.fd, b)
	if err != nil {
		p.log.Errorf("write failed: %v", err)
		return 0
	}
	p.log.Tracef("tx %d bytes: %s", n, logging.Escape(b[:n]))
	return n
}

// Read implements platform.DeviceIO. It returns 0 when no bytes are
// available right now.
func (p *Port) Read(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	n, err := unix.Read(p.fd, b)
	if err != nil {
		if err == unix.EAGAIN {
			return 0
		}
		p.log.Errorf("read failed: %v", err)
		return 0
	}
	if n < 0 {
		return 0
	}
	p.log.Tracef("rx %d bytes: %s", n, logging.Escape(b[:n]))
	return n
}

// Close stops the poller and closes the descriptor.
func (p *Port) Close() error {
	if !p.run.CompareAndSwap(true, false) {
		return nil
	}
	<-p.done
	return unix.Close(p.fd)
}

func (p *Port) notifyRx() {
	if box := p.sub.Load(); box != nil {
		box.s.Notify(platform.RxReady)
	}
}

func (p *Port) pollLoop() {
	defer close(p.done)
	fds := []unix.PollFd{{Fd: int32(p.fd), Events: unix.POLLIN}}
	for p.run.Load() {
		fds[0].Events = unix.POLLIN
		fds[0].Revents = 0
		n, err := unix.Poll(fds, pollTimeoutMs)
		if err != nil || n <= 0 {
			// timeout or interrupted
			continue
		}
		if fds[0].Revents&unix.POLLIN != 0 {
			p.notifyRx()
		}
	}
}

// configureRaw puts the tty in raw 8N1 mode at 115200 baud.
func configureRaw(fd int) error {
	tio, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}

	// cfmakeraw
	tio.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	tio.Oflag &^= unix.OPOST
	tio.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN

	// 8N1, receiver on, modem control lines ignored
	tio.Cflag &^= unix.PARENB | unix.CSTOPB | unix.CSIZE
	tio.Cflag |= unix.CS8 | unix.CLOCAL | unix.CREAD

	// fixed 115200 baud
	tio.Cflag &^= unix.CBAUD
	tio.Cflag |= unix.B115200
	tio.Ispeed = unix.B115200
	tio.Ospeed = unix.B115200

	// non-blocking reads
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 0

	return unix.IoctlSetTermios(fd, unix.TCSETS, tio)
}
