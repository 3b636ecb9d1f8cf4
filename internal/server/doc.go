// Package server implements the MCP (Model Context Protocol) server that
// exposes the pixel transforms as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at pixel
//   - image_abstract: Merge similar connected pixels into averaged regions
//   - image_negate: Invert R, G and B
//
// Transform tools return the result as base64 PNG (optionally downscaled
// for preview with max_size) and can also save the full-size result to
// output_path.
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process so that
// repeated transforms of one file decode it once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// An abstract run stopped by PIXELS_TIMEOUT is reported as a tool failure
// naming how many pixels were painted; partial images are never returned.
//
// # Logging
//
// Diagnostics go to the zerolog logger handed to New, which the binary
// points at stderr so stdout stays reserved for the protocol.
package server
