package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a structured API origin: scheme, host and optional port.
// It implements the flag.Value interface.
type NetAddress struct {
	Scheme string
	Host   string
	Port   int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a API address in format [scheme://]host[:port]
//	-d SQLite database path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-page-size search page size
//	-debounce debounce interval for filters (e.g., "500ms")
//	-mode client mode: user or admin
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var pageSize int
	var debounce time.Duration
	var mode string

	flag.Var(&serverAddress, "a", "API address [scheme://]host[:port]")
	flag.StringVar(&databaseDSN, "d", "", "SQLite database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.IntVar(&pageSize, "page-size", 0, "Search page size")
	flag.DurationVar(&debounce, "debounce", 0, "Debounce interval (e.g., 500ms)")
	flag.StringVar(&mode, "mode", "", "Client mode: user or admin")

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Mode:           strings.ToLower(strings.TrimSpace(mode)),
			SearchPageSize: pageSize,
			Debounce:       debounce,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the canonical origin for a NetAddress, or an empty string
// when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" {
		return ""
	}

	scheme := a.Scheme
	if scheme == "" {
		scheme = "http"
	}
	if a.Port == 0 {
		return scheme + "://" + a.Host
	}

	return scheme + "://" + a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses an origin of the form [scheme://]host[:port]. Only http and
// https are accepted and the port, when given, must be positive.
func (a *NetAddress) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("empty address")
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return errors.New("need address in a form `[scheme://]host[:port]`")
	}

	port := 0
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return err
		}
		if port < 1 {
			return errors.New("port number is a positive integer")
		}
	}

	a.Scheme = u.Scheme
	a.Host = u.Hostname()
	a.Port = port
	return nil
}
