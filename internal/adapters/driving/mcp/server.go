package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Instructions is sent to clients on initialization.
const Instructions = `glbanim retargets glTF animation clips onto skinned GLB avatars.

Call "animate" with an avatar URL or path to save a merged GLB; omit the
animation to use the configured catalog. The result reports matched and
skipped channels and lists animation joints with no avatar counterpart.
Call "inspect" to see the skins, joints and animations of any asset first.
Read ` + uriScheme + `catalog for the available clips and ` + uriScheme + `history for
recent saved merges.`

const (
	healthPath      = "/healthz"
	shutdownTimeout = 5 * time.Second
)

// Server exposes the model service over MCP.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "glbanim",
		Title:   "glTF animation retargeting",
		Version: Version,
	}
	opts := &mcp.ServerOptions{
		Instructions: Instructions,
		HasTools:     true,
		HasResources: true,
		InitializedHandler: func(_ context.Context, _ *mcp.InitializedRequest) {
			logger.Debug("mcp: client initialized")
		},
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, opts),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves a single client over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("mcp: serving on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler plus a health endpoint
// reporting whether merge history is available.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(healthPath, s.handleHealth)
	mux.Handle("/", mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil))
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if _, err := s.ports.Model.History(r.Context(), 1); err != nil {
		status = "degraded"
		logger.Warn("mcp: health check history: %v", err)
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, status)
}

// RunHTTP serves Handler on addr until ctx is cancelled, then shuts down
// within shutdownTimeout.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("mcp: shutdown: %v", err)
		}
	}()

	logger.Info("mcp: serving on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
