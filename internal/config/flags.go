package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-tls-address HTTPS server address in format [host]:[port]
//	-tls-cert server certificate file path
//	-tls-key server private key file path
//	-api-key shared secret expected in the X-API-KEY header
//	-env execution environment ("development" or "production")
//	-version application version string
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress, tlsServerAddress NetAddress
	var tlsCertFile string
	var tlsKeyFile string
	var apiKey string
	var environment string
	var appVersion string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&tlsServerAddress, "tls-address", "Net HTTPS server address host:port")
	flag.StringVar(&tlsCertFile, "tls-cert", "", "TLS certificate file path")
	flag.StringVar(&tlsKeyFile, "tls-key", "", "TLS private key file path")
	flag.StringVar(&apiKey, "api-key", "", "API key expected in the X-API-KEY header")
	flag.StringVar(&environment, "env", "", "Execution environment (development|production)")
	flag.StringVar(&appVersion, "version", "", "Application version")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Environment: environment,
			Version:     appVersion,
		},
		Auth: Auth{
			APIKey: apiKey,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			TLSAddress:     tlsServerAddress.String(),
			TLSCertFile:    tlsCertFile,
			TLSKeyFile:     tlsKeyFile,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// config merge treats the flag as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
