package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for glbanim resources.
	uriScheme = "glbanim://"

	// defaultHistoryLimit bounds the plain history resource.
	defaultHistoryLimit = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "catalog",
		Name:        "catalog",
		Description: "Animations chosen from when none is given",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recent saved merges, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{limit}",
		Name:        "history-limited",
		Description: "Up to limit recent saved merges, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Effective configuration values",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleCatalogResource returns the configured animation sources.
func (s *Server) handleCatalogResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	sources := s.ports.Model.Catalog()
	if sources == nil {
		sources = []domain.AnimationSource{}
	}
	return jsonResource(req.Params.URI, sources)
}

// handleHistoryResource returns recent merges.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	limit, ok := extractHistoryLimit(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	records, err := s.ports.Model.History(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	type recordInfo struct {
		ID         string `json:"id"`
		Avatar     string `json:"avatar"`
		Animation  string `json:"animation"`
		OutputPath string `json:"output_path,omitempty"`
		Matched    int    `json:"channels_matched"`
		Skipped    int    `json:"channels_skipped"`
		CreatedAt  string `json:"created_at"`
	}

	infos := make([]recordInfo, len(records))
	for i := range records {
		infos[i] = recordInfo{
			ID:         records[i].ID,
			Avatar:     records[i].Avatar,
			Animation:  records[i].Animation,
			OutputPath: records[i].OutputPath,
			Matched:    records[i].ChannelsMatched,
			Skipped:    records[i].ChannelsSkipped,
			CreatedAt:  records[i].CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}

	return jsonResource(req.Params.URI, infos)
}

// handleSettingsResource returns every known setting.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	values := map[string]string{}
	if s.ports.Settings != nil {
		for _, key := range s.ports.Settings.Keys() {
			value, err := s.ports.Settings.Value(key)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", key, err)
			}
			values[key] = value
		}
	}
	return jsonResource(req.Params.URI, values)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractHistoryLimit parses glbanim://history and glbanim://history/{limit}.
func extractHistoryLimit(uri string) (int, bool) {
	const base = uriScheme + "history"

	if uri == base {
		return defaultHistoryLimit, true
	}
	if !strings.HasPrefix(uri, base+"/") {
		return 0, false
	}

	limit, err := strconv.Atoi(strings.TrimPrefix(uri, base+"/"))
	if err != nil || limit < 0 {
		return 0, false
	}
	return limit, true
}
