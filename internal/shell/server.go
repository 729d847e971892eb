package shell

import (
	"context"
	"errors"
	"log"
	"net"
	"time"

	"github.com/oahshtsua/lab/bst/internal/store"
)

const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

// Server runs one Session per TCP connection. All sessions share the same
// store.
type Server struct {
	Store store.Store
}

func (srv *Server) handle(conn net.Conn) {
	defer conn.Close()
	sess := NewSession(srv.Store, conn, conn, Options{NoColor: true})
	if err := sess.Run(); err != nil {
		log.Println("Session ended with error:", conn.RemoteAddr(), err)
		return
	}
	log.Println("Session closed:", conn.RemoteAddr())
}

func (srv *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return srv.Serve(ctx, listener)
}

// Serve accepts connections until ctx is cancelled, then closes listener.
func (srv *Server) Serve(ctx context.Context, listener net.Listener) error {
	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	log.Println("Accepting shell connections on", listener.Addr())
	var delay time.Duration
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			if delay == 0 {
				delay = minAcceptDelay
			} else {
				delay = min(2*delay, maxAcceptDelay)
			}
			log.Printf("Unable to accept connection, retrying in %v: %v", delay, err)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil
			}
			continue
		}
		delay = 0
		log.Println("Connection received from", conn.RemoteAddr())
		go srv.handle(conn)
	}
}
