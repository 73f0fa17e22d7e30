package runner

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/miekg/dns"
)

// resolvConf is the system resolver configuration consulted by the
// preflight.
const resolvConf = "/etc/resolv.conf"

// preflight checks that a remote base URL host actually resolves before
// the battery runs, so a typo'd host shows up as one log line instead of
// eight connect timeouts. Literal IPs and localhost are skipped. The
// result is diagnostic only and is never recorded as an outcome.
func (r *Runner) preflight(ctx context.Context) {
	u, err := url.Parse(r.baseURL)
	if err != nil {
		return
	}
	host := u.Hostname()
	if host == "" || host == "localhost" || net.ParseIP(host) != nil {
		return
	}

	if err := resolveHost(ctx, host, resolvConf); err != nil {
		r.logger.Warnf("preflight: %s does not resolve (%v); probes will likely time out", host, err)
		return
	}
	r.logger.Debugf("preflight: %s resolves", host)
}

// resolveHost queries the first configured nameserver for an A record,
// falling back to AAAA.
func resolveHost(ctx context.Context, host, conf string) error {
	cfg, err := dns.ClientConfigFromFile(conf)
	if err != nil {
		return fmt.Errorf("no usable resolver config: %w", err)
	}
	if len(cfg.Servers) == 0 {
		return fmt.Errorf("resolver config lists no nameservers")
	}

	server := net.JoinHostPort(cfg.Servers[0], cfg.Port)
	client := &dns.Client{Timeout: 3 * time.Second}

	var lastErr error
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		msg := new(dns.Msg)
		msg.SetQuestion(dns.Fqdn(host), qtype)
		msg.RecursionDesired = true

		resp, _, err := client.ExchangeContext(ctx, msg, server)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.Rcode == dns.RcodeSuccess && len(resp.Answer) > 0 {
			return nil
		}
		lastErr = fmt.Errorf("rcode %s with %d answers",
			dns.RcodeToString[resp.Rcode], len(resp.Answer))
	}
	return lastErr
}
