package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

var (
	ErrCantBindToPort = errors.New("bind: can't bind to host:port")
	ErrInvalidPort    = errors.New("bind: port is not a number between 0 and 65535")
)

type Bind struct {
	HTTP    string
	Metrics string // empty disables the metrics listener
}

// ParsePort turns the PORT setting into a wildcard listen address.
func ParsePort(port string) (string, error) {
	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidPort, port, err)
	}

	return net.JoinHostPort("", strconv.FormatUint(n, 10)), nil
}

// Listeners is what Listen managed to bind.
type Listeners struct {
	HTTP    net.Listener
	Metrics net.Listener // nil when the metrics listener is disabled
}

// Close closes every listener that was bound.
func (l Listeners) Close() error {
	var errs []error

	for _, ln := range []net.Listener{l.HTTP, l.Metrics} {
		if ln == nil {
			continue
		}
		if err := ln.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Listen binds every configured address. An empty host listens on all
// interfaces; on hosts with IPv6 that is a single dual-stack socket that
// also accepts IPv4 clients through mapped addresses.
func (b *Bind) Listen() (Listeners, error) {
	var result Listeners
	var errs []error

	ln, err := net.Listen("tcp", b.HTTP)
	if err != nil {
		errs = append(errs, fmt.Errorf("%w %q: %w", ErrCantBindToPort, b.HTTP, err))
	} else {
		result.HTTP = ln
	}

	if b.Metrics != "" {
		ln, err = net.Listen("tcp", b.Metrics)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %w", ErrCantBindToPort, b.Metrics, err))
		} else {
			result.Metrics = ln
		}
	}

	if len(errs) != 0 {
		result.Close()
		return Listeners{}, errors.Join(errs...)
	}

	return result, nil
}
