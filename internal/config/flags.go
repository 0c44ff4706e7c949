package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress is a host:port flag value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags reads the server flags from args.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("f4f-server", flag.ContinueOnError)

	var httpAddress, grpcAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&httpAddress, "a", "HTTP listen address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Images.Backend, "image-backend", "", "Food image storage: file or s3")
	fs.StringVar(&cfg.Storage.Images.Dir, "image-dir", "", "Food image directory of the file backend")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Auth.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.Auth.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.Auth.TokenDuration, "token-duration", 0, "Token duration (e.g. 1h, 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return cfg, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost", empty, or an IP.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" && net.ParseIP(strings.Trim(host, "[]")) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)

func parseClientFlags(args []string) (*ClientConfig, error) {
	fs := flag.NewFlagSet("f4f-admin", flag.ContinueOnError)
	cfg := &ClientConfig{}

	fs.StringVar(&cfg.ServerURL, "s", "", "Portal server URL")
	fs.StringVar(&cfg.DataDir, "data-dir", "", "Directory of the local state database and logs")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", 0, "Request timeout")
	fs.DurationVar(&cfg.RefreshInterval, "refresh-interval", 0, "Background refresh interval")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	return cfg, nil
}
