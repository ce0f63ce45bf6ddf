// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the namecraft naming utilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ldecampos/namecraft"
)

const serverInstructions = `namecraft MCP server — classifies, converts, tokenizes, sequences, and encodes scene-graph node names.

Configuration: All defaults are configurable via NAMECRAFT_* environment variables set in your MCP client config.

Key settings:
- NAMECRAFT_PAD (default: 2) — default zero-fill width for the increment tool
- NAMECRAFT_RENAME_UNIQUE (default: false) — bump numeric suffixes in preview_rename so computed names stay unique within the batch

All tools are pure string computations; nothing reads or writes the scene graph.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "namecraft", Version: namecraft.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify",
		Description: "Report the case style of each name: camelCase, PascalCase, snake_case, kebab-case, or unknown.",
	}, handleClassify)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_case",
		Description: "Convert names to a case style (camelCase, PascalCase, snake_case, or kebab-case). Optionally strip digit runs from the converted names.",
	}, handleConvertCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tokenize",
		Description: "Split a name into its word tokens, handling camelCase humps, '_'/'-' delimiters, digit runs, and trailing acronyms.",
	}, handleTokenize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "increment",
		Description: "Increment each name's trailing digit run with zero padding (appending a fresh run when missing), or step the whole name as a base-26 letter sequence with letters=true. Default pad is configurable via NAMECRAFT_PAD.",
	}, handleIncrement)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "decrement",
		Description: "Decrement each name's trailing digit run (runs at 0 or 1 are removed), or step the whole name back as a base-26 letter sequence with letters=true.",
	}, handleDecrement)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_digits",
		Description: "Extract digit runs from a name: all runs, the run at an index (negative counts from the end), or only runs inside [...] pairs with bracketed=true.",
	}, handleExtractDigits)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "encode_value",
		Description: "Encode a signed decimal value as an identifier-safe token: 'M' for minus, 'd' for the decimal point (-0.99 -> M0d99).",
	}, handleEncodeValue)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "decode_value",
		Description: "Decode an identifier-safe value token (optional 'M', digits, optional 'd' and digits) back into its number.",
	}, handleDecodeValue)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview_rename",
		Description: "Preview a batch rename plan (YAML rules: match, style, strip_digits, prefix, suffix, separator, renumber, pad) against a list of names without touching any scene graph. Within-batch collision bumping defaults to NAMECRAFT_RENAME_UNIQUE.",
	}, handlePreviewRename)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
