// Package mcprpc wraps the stdio MCP subprocess transport behind simple
// JSON tool calls. Each live integration spawns one helper bundle as a child
// process and talks to it over stdin/stdout for the process lifetime.
package mcprpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// Client is a connected MCP subprocess client for one integration.
type Client struct {
	name string
	mcp  *client.Client
}

// Dial spawns the helper bundle and performs the MCP initialize handshake.
// env entries are passed to the child process in addition to the parent
// environment.
func Dial(ctx context.Context, name, command string, args []string, env map[string]string) (*Client, error) {
	envSlice := make([]string, 0, len(env))
	for k, v := range env {
		envSlice = append(envSlice, k+"="+v)
	}

	c, err := client.NewStdioMCPClient(command, envSlice, args...)
	if err != nil {
		return nil, fmt.Errorf("starting %s helper: %w", name, err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "paylane-" + name,
		Version: "1.0.0",
	}
	if _, err := c.Initialize(ctx, initReq); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("initializing %s client: %w", name, err)
	}

	return &Client{name: name, mcp: c}, nil
}

// Name returns the integration name this client was dialed for.
func (c *Client) Name() string { return c.name }

// CallTool invokes a named tool and, when out is non-nil, decodes the JSON
// payload of the first text block of the response into it.
func (c *Client) CallTool(ctx context.Context, tool string, args map[string]any, out any) error {
	req := mcp.CallToolRequest{}
	req.Params.Name = tool
	req.Params.Arguments = args

	res, err := c.mcp.CallTool(ctx, req)
	if err != nil {
		return fmt.Errorf("calling %s.%s: %w", c.name, tool, err)
	}

	text := firstText(res.Content)
	if res.IsError {
		return fmt.Errorf("%s.%s failed: %s", c.name, tool, text)
	}
	if out == nil || text == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("decoding %s.%s response: %w", c.name, tool, err)
	}
	return nil
}

// Close shuts down the subprocess and its transport.
func (c *Client) Close() error {
	if err := c.mcp.Close(); err != nil {
		return fmt.Errorf("closing %s client: %w", c.name, err)
	}
	return nil
}

func firstText(content []mcp.Content) string {
	for _, item := range content {
		if tc, ok := item.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
