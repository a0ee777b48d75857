package adapter

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/calm-journal/internal/logger"
	"github.com/MKhiriev/calm-journal/internal/utils"
)

// NetProbe reports connectivity as "a network link is up and the internet is
// reachable". The link check looks for a non-loopback interface that is up;
// reachability is a GET on a lightweight endpoint answering below 500.
type NetProbe struct {
	client     *utils.HTTPClient
	url        string
	interfaces func() ([]net.Interface, error)
	logger     *logger.Logger
}

// NewNetProbe builds a probe hitting probeURL. An empty probeURL skips the
// reachability half and only checks the link.
func NewNetProbe(probeURL string, timeout time.Duration, logger *logger.Logger) *NetProbe {
	return &NetProbe{
		client:     utils.NewHTTPClient(timeout),
		url:        probeURL,
		interfaces: net.Interfaces,
		logger:     logger,
	}
}

// IsConnected implements [ConnectivityProbe].
func (p *NetProbe) IsConnected(ctx context.Context) bool {
	if !p.hasLink() {
		return false
	}
	if p.url == "" {
		return true
	}

	resp, err := p.client.R().SetContext(ctx).Get(p.url)
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "NetProbe.IsConnected").Msg("reachability check failed")
		return false
	}

	return resp.StatusCode() < http.StatusInternalServerError
}

func (p *NetProbe) hasLink() bool {
	ifaces, err := p.interfaces()
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "NetProbe.hasLink").Msg("cannot list network interfaces")
		return false
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp != 0 && iface.Flags&net.FlagLoopback == 0 {
			return true
		}
	}
	return false
}

// StaticProbe reports a fixed, switchable connectivity state.
type StaticProbe struct {
	online atomic.Bool
}

func NewStaticProbe(online bool) *StaticProbe {
	p := &StaticProbe{}
	p.online.Store(online)
	return p
}

// Set switches the reported state.
func (p *StaticProbe) Set(online bool) {
	p.online.Store(online)
}

func (p *StaticProbe) IsConnected(context.Context) bool {
	return p.online.Load()
}
