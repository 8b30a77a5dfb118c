package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses the server command-line flags from args (usually
// os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d directory database DSN (postgres URL or sqlite file)
//	-s staging directory
//	-redis staging redis URL
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer session token issuer
//	-token-duration session lifetime (e.g. "30m")
//	-request-timeout request timeout (e.g. "30s")
//	-site-salt identity token site salt
//	-installed-at site installation unix time
//	-ping-interval heartbeat interval in seconds
//	-debug keep invalid drafts and surface rejection reasons
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("draft-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, stagingDir, redisURL string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var siteSalt string
	var installedAt int64
	var pingInterval int
	var debug bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Directory database DSN")
	fs.StringVar(&stagingDir, "s", "", "Draft staging directory")
	fs.StringVar(&redisURL, "redis", "", "Draft staging redis URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Session lifetime (e.g., 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&siteSalt, "site-salt", "", "Identity token site salt")
	fs.Int64Var(&installedAt, "installed-at", 0, "Site installation unix time")
	fs.IntVar(&pingInterval, "ping-interval", 0, "Heartbeat interval in seconds")
	fs.BoolVar(&debug, "debug", false, "Keep invalid drafts and surface rejection reasons")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Staging: Staging{
				Dir:      stagingDir,
				RedisURL: redisURL,
			},
		},
		Rescue: Rescue{
			SiteSalt:            siteSalt,
			InstalledAt:         installedAt,
			PingIntervalSeconds: pingInterval,
			Debug:               debug,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces; any other host must be
// "localhost" or an IP address.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
