// Package telnetio implements platform.DeviceIO over a telnet
// connection, for modems exposed through a ser2net-style TCP bridge. A
// background reader drains the connection into a bounded buffer and
// posts RxReady; Read serves from that buffer without blocking.
package telnetio

import (
	"sync"
	"sync/atomic"

	"github.com/ziutek/telnet"

	"github.com/zmolnar/go-atlink/internal/logging"
	"github.com/zmolnar/go-atlink/platform"
)

const rxBufferSize = 4096

type subscriberBox struct {
	s platform.Subscriber
}

// Conn is a telnet-backed DeviceIO.
type Conn struct {
	conn *telnet.Conn
	run  atomic.Bool
	sub  atomic.Pointer[subscriberBox]
	done chan struct{}
	log  *logging.Logger

	mu sync.Mutex
	rx []byte
}

// Dial connects to a telnet bridge at addr (host:port) and starts the
// reader.
func Dial(addr string) (*Conn, error) {
	tc, err := telnet.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	c := &Conn{
		conn: tc,
		done: make(chan struct{}),
		log:  logging.Default().WithName("telnetio"),
	}
	c.run.Store(true)
	go c.readLoop()
	c.log.Infof("connected to %s", addr)
	return c, nil
}

// Subscribe implements platform.DeviceIO.
func (c *Conn) Subscribe(s platform.Subscriber) {
	c.sub.Store(&subscriberBox{s: s})
}

// Write implements platform.DeviceIO.
func (c *Conn) Write(b []byte) int {
	n, err := c.conn.Write(b)
	if err != nil {
		c.log.Errorf("write failed: %v", err)
	}
	return n
}

// Read implements platform.DeviceIO; it drains the reader's buffer and
// returns 0 when nothing has arrived.
func (c *Conn) Read(b []byte) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := copy(b, c.rx)
	c.rx = c.rx[:copy(c.rx, c.rx[n:])]
	return n
}

// Close stops the reader and closes the connection.
func (c *Conn) Close() error {
	if !c.run.CompareAndSwap(true, false) {
		return nil
	}
	err := c.conn.Close()
	<-c.done
	return err
}

func (c *Conn) notifyRx() {
	if box := c.sub.Load(); box != nil {
		box.s.Notify(platform.RxReady)
	}
}

func (c *Conn) readLoop() {
	defer close(c.done)
	buf := make([]byte, 512)
	for c.run.Load() {
		n, err := c.conn.Read(buf)
		if n > 0 {
			c.mu.Lock()
			free := rxBufferSize - len(c.rx)
			if n > free {
				// bounded buffer: oldest unread bytes are dropped
				drop := n - free
				c.rx = c.rx[:copy(c.rx, c.rx[drop:])]
				c.log.Warnf("rx buffer overflow, dropped %d bytes", drop)
			}
			c.rx = append(c.rx, buf[:n]...)
			c.mu.Unlock()
			c.notifyRx()
		}
		if err != nil {
			if c.run.Load() {
				c.log.Errorf("read failed: %v", err)
			}
			return
		}
	}
}
