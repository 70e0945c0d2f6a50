// Package statusweb serves read-only game status over HTTP
// Handlers only read atomics and an immutable song listing, never clock state
package statusweb

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/beat-fighter/parameter"
	"github.com/lixenwraith/beat-fighter/song"
	"github.com/lixenwraith/beat-fighter/status"
)

// SongInfo is the listing entry for one library song
type SongInfo struct {
	UID       string  `json:"uid"`
	Name      string  `json:"name"`
	BPM       float64 `json:"bpm"`
	Beats     int     `json:"beats"`
	StartTime float64 `json:"cropped_start_time"`
}

// NewHandler builds the status routes
func NewHandler(reg *status.Registry, songs []SongInfo) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// ?prefix=rhythm. narrows the snapshot to one metric group
	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, reg.Prefixed(c.Query("prefix")))
	})

	r.GET("/song", func(c *gin.Context) {
		name := reg.Labels.Get("rhythm.song").Load()
		if name == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "no song playing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"name":     name,
			"index":    reg.Counters.Get("rhythm.index").Load(),
			"interval": reg.Gauges.Get("rhythm.interval").Get(),
			"loops":    reg.Counters.Get("rhythm.loops").Load(),
		})
	})

	r.GET("/songs", func(c *gin.Context) {
		c.JSON(http.StatusOK, songs)
	})

	return r
}

// Listing summarizes a song library
func Listing(songs []*song.Song) []SongInfo {
	out := make([]SongInfo, 0, len(songs))
	for _, s := range songs {
		out = append(out, SongInfo{
			UID:       s.UID,
			Name:      s.Name,
			BPM:       s.BPM(),
			Beats:     s.Schedule().Len(),
			StartTime: s.StartTime(),
		})
	}
	return out
}

// Service runs the status server when an address is configured
type Service struct {
	statusSvc *status.Service
	songSvc   *song.Service

	addr     string
	server   *http.Server
	listener net.Listener
}

// NewService creates the status server service
func NewService(statusSvc *status.Service, songSvc *song.Service) *Service {
	return &Service{statusSvc: statusSvc, songSvc: songSvc}
}

// Name implements Service
func (s *Service) Name() string {
	return "statusweb"
}

// Dependencies implements Service
func (s *Service) Dependencies() []string {
	return []string{"status", "songs"}
}

// Init implements Service
// args[0]: string - listen address, empty disables the server
func (s *Service) Init(args ...any) error {
	if len(args) > 0 {
		if addr, ok := args[0].(string); ok {
			s.addr = addr
		}
	}
	return nil
}

// Start implements Service
// Binds synchronously so a bad address fails startup
func (s *Service) Start() error {
	if s.addr == "" {
		return nil
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = ln
	s.server = &http.Server{
		Handler: NewHandler(s.statusSvc.Registry(), Listing(s.songSvc.Registry().Songs())),
	}

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Status server stopped", "err", err)
		}
	}()
	log.Info("Status server listening", "addr", ln.Addr().String())
	return nil
}

// Stop implements Service
func (s *Service) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), parameter.StatusShutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.server = nil
	s.listener = nil
	return err
}

// Addr returns the bound address, empty when not serving
func (s *Service) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}
