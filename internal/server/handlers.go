package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ironsheep/pixels-mcp/internal/imaging"
	"github.com/ironsheep/pixels-mcp/internal/segment"
)

// defaultPaletteSize is used when image_abstract omits palette_size.
const defaultPaletteSize = 8

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_abstract").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	log := s.log.With().Str("tool", params.Name).Dur("elapsed", time.Since(start)).Logger()
	if err != nil {
		log.Warn().Err(err).Msg("tool failed")
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}
	log.Info().Msg("tool completed")

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_abstract":
		return s.handleImageAbstract(ctx, args)
	case "image_negate":
		return s.handleImageNegate(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments and requires a path.
func decodeArgs(args json.RawMessage, v interface{ path() string }) error {
	if len(args) == 0 {
		return errors.New("missing arguments")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return err
	}
	if v.path() == "" {
		return errors.New("path is required")
	}
	return nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (a *imageLoadArgs) path() string { return a.Path }

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (a *imageSampleColorArgs) path() string { return a.Path }

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(buf.Image(), a.X, a.Y)
}

// === Transform Handlers ===

// outputArgs are shared by the transform tools.
type outputArgs struct {
	Path         string `json:"path"`
	OutputPath   string `json:"output_path"`
	MaxSize      int    `json:"max_size"`
	IncludeImage *bool  `json:"include_image"`
}

func (a *outputArgs) path() string { return a.Path }

// TransformResult is returned by image_abstract and image_negate.
type TransformResult struct {
	Width      int                   `json:"width"`
	Height     int                   `json:"height"`
	OutputPath string                `json:"output_path,omitempty"`
	Image      *imaging.EncodedImage `json:"image,omitempty"`
}

// AbstractResult is returned by image_abstract.
type AbstractResult struct {
	TransformResult
	Threshold     int                    `json:"threshold"`
	Regions       int                    `json:"regions"`
	LargestRegion int                    `json:"largest_region"`
	Palette       []segment.PaletteEntry `json:"palette,omitempty"`
}

// deliver saves and/or encodes a transform output as requested.
func deliver(out *imaging.Buffer, a outputArgs) (*TransformResult, error) {
	if a.MaxSize < 0 {
		return nil, fmt.Errorf("max_size must not be negative, got %d", a.MaxSize)
	}

	result := &TransformResult{Width: out.Width(), Height: out.Height()}
	if a.OutputPath != "" {
		if err := imaging.Save(out.Image(), a.OutputPath); err != nil {
			return nil, err
		}
		result.OutputPath = a.OutputPath
	}
	if a.IncludeImage == nil || *a.IncludeImage {
		enc, err := imaging.EncodePNG(out.Image(), a.MaxSize)
		if err != nil {
			return nil, err
		}
		result.Image = enc
	}
	return result, nil
}

type imageAbstractArgs struct {
	outputArgs
	Threshold   *int `json:"threshold"`
	PaletteSize *int `json:"palette_size"`
}

func (s *Server) handleImageAbstract(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imageAbstractArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	threshold := s.cfg.Threshold
	if a.Threshold != nil {
		threshold = *a.Threshold
	}
	metric, err := imaging.NewMetric(threshold)
	if err != nil {
		return nil, err
	}
	paletteSize := defaultPaletteSize
	if a.PaletteSize != nil {
		paletteSize = *a.PaletteSize
	}

	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	res, err := segment.AbstractBuffer(ctx, src, segment.Options{Metric: metric, PaletteSize: paletteSize})
	if err != nil {
		if res != nil && res.Partial {
			return nil, fmt.Errorf("abstract incomplete (%d of %d pixels): %w", res.Visited, res.Width*res.Height, err)
		}
		return nil, err
	}
	s.log.Debug().
		Str("path", a.Path).
		Int("regions", res.Regions).
		Int("largest_region", res.LargestRegion).
		Msg("abstracted image")

	out, err := deliver(res.Image, a.outputArgs)
	if err != nil {
		return nil, err
	}
	return &AbstractResult{
		TransformResult: *out,
		Threshold:       metric.Threshold,
		Regions:         res.Regions,
		LargestRegion:   res.LargestRegion,
		Palette:         res.Palette,
	}, nil
}

func (s *Server) handleImageNegate(args json.RawMessage) (interface{}, error) {
	var a outputArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return deliver(imaging.NegateBuffer(src), a)
}
