package main

import (
	"context"
	"net"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_ReturnsListenerError(t *testing.T) {
	// Arrange
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()
	e := echo.New()
	e.HideBanner = true

	// Act
	err = serve(context.Background(), e, taken.Addr().String())

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address already in use")
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := echo.New()
	e.HideBanner = true

	err := serve(ctx, e, "127.0.0.1:0")

	require.NoError(t, err)
}
