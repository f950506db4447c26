package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/xtding233/skyblock-rng/internal/service"
)

// Client calls a remote Simulator service.
type Client struct {
	conn *grpc.ClientConn
}

// Dial connects to target without TLS. Extra options are appended.
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}
	return &Client{conn: conn}, nil
}

// Conn exposes the underlying connection, e.g. for health checks.
func (c *Client) Conn() *grpc.ClientConn { return c.conn }

// Close closes the connection.
func (c *Client) Close() error { return c.conn.Close() }

// Simulate runs a simulation remotely.
func (c *Client) Simulate(ctx context.Context, req service.SimulateRequest) (service.SimulateResponse, error) {
	var out service.SimulateResponse
	if err := c.conn.Invoke(ctx, "/"+ServiceName+"/Simulate", &req, &out); err != nil {
		return service.SimulateResponse{}, err
	}
	return out, nil
}

// ListDrops fetches the remote catalog.
func (c *Client) ListDrops(ctx context.Context) (service.DropsResponse, error) {
	var out service.DropsResponse
	if err := c.conn.Invoke(ctx, "/"+ServiceName+"/ListDrops", &ListDropsRequest{}, &out); err != nil {
		return service.DropsResponse{}, err
	}
	return out, nil
}
