package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync/atomic"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"invaders/game"
)

const shutdownTimeout = 5 * time.Second

// Server serves one independent game per SSH connection, drawn with
// half-block characters.
type Server struct {
	config   game.Config
	assets   *game.Assets
	logger   *zap.Logger
	profiler *game.Profiler
	sessions atomic.Int64

	// base is cancelled on shutdown and ends every session
	base context.Context
}

// NewServer creates a new SSH server for the given config and sprites
func NewServer(config game.Config, assets *game.Assets, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		config:   config,
		assets:   assets,
		logger:   logger,
		profiler: game.NewProfiler(config.ProfileDir, config.SlowFrame, logger),
	}
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.SSH.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. Open sessions are
// ended on shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	server := &ssh.Server{
		Addr:    ln.Addr().String(),
		Handler: s.handleSession,
	}
	if err := server.SetOption(ssh.HostKeyFile(s.config.SSH.HostKey)); err != nil {
		ln.Close()
		return fmt.Errorf("set host key: %w", err)
	}
	s.base = ctx

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("SSH server listening", zap.String("addr", server.Addr))
		err := server.Serve(ln)
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		ln.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		if errors.Is(err, context.DeadlineExceeded) {
			err = server.Close()
		}
		if errors.Is(err, net.ErrClosed) {
			// ln is already closed
			return nil
		}
		return err
	})
	return g.Wait()
}

// Sessions returns the number of connected players
func (s *Server) Sessions() int64 {
	return s.sessions.Load()
}

func (s *Server) handleSession(sess ssh.Session) {
	// Require PTY
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		sess.Exit(1)
		return
	}

	logger := s.logger.With(
		zap.String("session", uuid.NewString()),
		zap.String("user", sess.User()),
		zap.String("remote", sess.RemoteAddr().String()))

	engine, err := game.NewEngine(s.config, s.assets, logger)
	if err != nil {
		logger.Error("failed to create engine", zap.Error(err))
		fmt.Fprintln(sess, "Error: could not start game")
		sess.Exit(1)
		return
	}

	s.sessions.Add(1)
	logger.Info("player connected", zap.Int64("sessions", s.Sessions()))
	defer func() {
		s.sessions.Add(-1)
		logger.Info("player disconnected",
			zap.Int("score", engine.State.Score),
			zap.Uint64("ticks", engine.State.Tick))
	}()

	io.WriteString(sess, EnableAltScreen()+HideCursor()+ClearScreen())
	defer io.WriteString(sess, Reset+ShowCursor()+DisableAltScreen())

	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()
	if s.base != nil {
		stop := context.AfterFunc(s.base, cancel)
		defer stop()
	}

	// Reader: blocks on the session, so it stays outside the group and ends
	// when the connection closes after this handler returns.
	go func() {
		defer cancel()
		var parser inputParser
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				return
			}
			for _, action := range parser.parse(buf[:n]) {
				if !apply(engine.Input, action) {
					return
				}
			}
		}
	}()

	var pending atomic.Pointer[ssh.Window]
	screen := NewScreen(ptyReq.Window.Width, ptyReq.Window.Height)
	present := func(buf *game.PixelBuffer) error {
		if win := pending.Swap(nil); win != nil {
			screen.Resize(win.Width, win.Height)
			logger.Debug("terminal resized", zap.Int("cols", win.Width), zap.Int("rows", win.Height))
		}
		frame, changed := screen.Render(buf, hudLine(engine.State))
		if !changed {
			return nil
		}
		_, err := io.WriteString(sess, frame)
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case win, ok := <-winCh:
				if !ok {
					return nil
				}
				pending.Store(&win)
			}
		}
	})
	g.Go(func() error {
		return game.NewLoop(engine, s.config.TickDuration(), s.profiler).Run(ctx, present)
	})

	if err := g.Wait(); err != nil {
		logger.Debug("session ended", zap.Error(err))
	}
}

// hudLine formats the status line shown under the playfield
func hudLine(state *game.GameState) string {
	hud := fmt.Sprintf("SCORE %04d  LIVES %d  ←/→ move  s stop  space fire  q quit", state.Score, state.Player.Lives)
	if state.Cleared() {
		hud = "WAVE CLEARED  " + hud
	}
	return hud
}
