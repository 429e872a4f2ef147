package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/RishabhSaini619/brc-gear-animator-glb/internal/core/domain"
)

// AnimateInput is the input schema for the animate tool.
type AnimateInput struct {
	Avatar    string `json:"avatar" jsonschema:"URL or local path of the skinned avatar GLB"`
	Animation string `json:"animation,omitempty" jsonschema:"URL or local path of the animation GLB (default: catalog pick)"`
}

// AnimateOutput is the output schema for the animate tool.
type AnimateOutput struct {
	Path            string   `json:"path"`
	Animation       string   `json:"animation"`
	ByteLength      int      `json:"byte_length"`
	ChannelsMatched int      `json:"channels_matched"`
	ChannelsSkipped int      `json:"channels_skipped"`
	Unmatched       []string `json:"unmatched,omitempty"`
}

// InspectInput is the input schema for the inspect tool.
type InspectInput struct {
	Ref string `json:"ref" jsonschema:"URL or local path of a GLB or glTF asset"`
}

// InspectOutput is the output schema for the inspect tool.
type InspectOutput struct {
	Container  string            `json:"container"`
	Version    string            `json:"version"`
	Generator  string            `json:"generator,omitempty"`
	ByteLength int               `json:"byte_length"`
	Nodes      int               `json:"nodes"`
	Skins      int               `json:"skins"`
	Joints     []string          `json:"joints,omitempty"`
	Animations []AnimationOutput `json:"animations,omitempty"`
}

// AnimationOutput describes one animation clip.
type AnimationOutput struct {
	Name     string `json:"name"`
	Channels int    `json:"channels"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "animate",
		Description: "Retarget an animation onto a skinned avatar and save the merged GLB",
	}, s.handleAnimate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "inspect",
		Description: "Describe the skin joints and animations of a glTF asset",
	}, s.handleInspect)
}

// handleAnimate handles the animate tool invocation.
func (s *Server) handleAnimate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnimateInput,
) (*mcp.CallToolResult, AnimateOutput, error) {
	if input.Avatar == "" {
		return nil, AnimateOutput{}, errors.New("avatar is required")
	}

	result, err := s.ports.Model.Save(ctx, domain.MergeRequest{
		Avatar:    domain.ParseRef(input.Avatar),
		Animation: domain.ParseRef(input.Animation),
	})
	if err != nil {
		return nil, AnimateOutput{}, fmt.Errorf("animate (%s): %w", domain.ErrorKind(err), err)
	}

	return nil, AnimateOutput{
		Path:            result.Path,
		Animation:       result.Animation.String(),
		ByteLength:      len(result.Data),
		ChannelsMatched: result.Report.ChannelsMatched,
		ChannelsSkipped: result.Report.ChannelsSkipped,
		Unmatched:       result.Report.UnmatchedNames(),
	}, nil
}

// handleInspect handles the inspect tool invocation.
func (s *Server) handleInspect(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InspectInput,
) (*mcp.CallToolResult, InspectOutput, error) {
	if input.Ref == "" {
		return nil, InspectOutput{}, errors.New("ref is required")
	}

	summary, err := s.ports.Model.Inspect(ctx, domain.ParseRef(input.Ref))
	if err != nil {
		return nil, InspectOutput{}, fmt.Errorf("inspect (%s): %w", domain.ErrorKind(err), err)
	}

	output := InspectOutput{
		Container:  summary.Container,
		Version:    summary.Version,
		Generator:  summary.Generator,
		ByteLength: summary.ByteLength,
		Nodes:      summary.Nodes,
		Skins:      summary.Skins,
		Joints:     summary.Joints,
		Animations: make([]AnimationOutput, len(summary.Animations)),
	}
	for i, a := range summary.Animations {
		output.Animations[i] = AnimationOutput{Name: a.Name, Channels: a.Channels}
	}

	return nil, output, nil
}
