package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func outputProperties() map[string]interface{} {
	return map[string]interface{}{
		"output_path": map[string]interface{}{
			"type":        "string",
			"description": "Optional path to save the full-size result. The format follows the extension (.png, .jpg, .gif, .bmp, .tif)",
		},
		"max_size": map[string]interface{}{
			"type":        "integer",
			"description": "Optional longest edge of the returned preview in pixels. 0 returns the result at full size",
			"default":     0,
		},
		"include_image": map[string]interface{}{
			"type":        "boolean",
			"description": "Return the result as base64 PNG. Default true",
			"default":     true,
		},
	}
}

func withOutputProperties(props map[string]interface{}) map[string]interface{} {
	for k, v := range outputProperties() {
		props[k] = v
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it has transparency. The decoded image is cached for later tool calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name: "image_abstract",
			Description: "Produce an abstract version of an image: connected pixels of similar color are merged into regions and each region is painted with its average color. " +
				"Returns region statistics, the largest regions' colors and the result image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withOutputProperties(map[string]interface{}{
					"path": pathProperty(),
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Channel-sum color distance |dR|+|dG|+|dB| below which a pixel joins its seed's region (1-766). Default 100",
						"default":     100,
					},
					"palette_size": map[string]interface{}{
						"type":        "integer",
						"description": "Number of largest regions to describe. Default 8",
						"default":     8,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_negate",
			Description: "Produce the color negative of an image (each of R, G, B becomes 255 minus its value; transparency is kept).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withOutputProperties(map[string]interface{}{
					"path": pathProperty(),
				}),
				"required": []string{"path"},
			},
		},
	}
}
