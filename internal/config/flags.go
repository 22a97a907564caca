package config

import (
	"errors"
	"flag"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host:port pair. It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the client flags from args and returns the positional
// arguments that follow them.
//
// Flags:
//
//	-a backend address in format [host]:[port]
//	-d sqlite database path
//	-c/-config json file path with configs
//	-env-file dotenv file path
//	-hash-key token sealing key
//	-request-timeout backend request timeout (e.g., "15s")
//	-log-file dashboard log file
//	-keep-session keep the session on 401 responses
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var backendAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var envFilePath string
	var hashKey string
	var requestTimeout time.Duration
	var logFile string
	var keepSession bool

	fs := flag.NewFlagSet("sales-admin", flag.ContinueOnError)
	fs.Var(&backendAddress, "a", "Backend address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFilePath, "env-file", "", "Dotenv file path")
	fs.StringVar(&hashKey, "hash-key", "", "Token sealing key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.BoolVar(&keepSession, "keep-session", false, "Keep the session on unauthorized responses")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return &StructuredConfig{
		App: App{
			HashKey:                   hashKey,
			KeepSessionOnUnauthorized: keepSession,
			LogFile:                   logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
		EnvFilePath:  envFilePath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
func (a *NetAddress) Set(s string) error {
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return errors.New("need address in a form `host:port`")
	}

	host := s[:idx]
	port, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host == "" || strings.ContainsAny(host, "/ ") {
		return errors.New("incorrect host provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
