package options

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// ListenOptions pick the address a server binds to.
type ListenOptions struct {
	Host string
	Port int
}

func AddListenArgs(cmd *cobra.Command, o *ListenOptions, defaultPort int) {
	cmd.Flags().StringVar(&o.Host, "host", "127.0.0.1",
		"Host or interface to listen on.")
	cmd.Flags().IntVar(&o.Port, "port", defaultPort,
		"Port to listen on (use 0 for random).")
}

// Addr validates the flags and joins them into a listen address.
func (o *ListenOptions) Addr() (string, error) {
	if o.Port < 0 || o.Port > 65535 {
		return "", fmt.Errorf("invalid port %d", o.Port)
	}
	host := strings.TrimSpace(o.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, strconv.Itoa(o.Port)), nil
}

// DisplayAddr renders a bound address for humans, replacing wildcard hosts.
func DisplayAddr(scheme string, a net.Addr) string {
	tcpAddr, ok := a.(*net.TCPAddr)
	if !ok {
		return fmt.Sprintf("%s://%s", scheme, a.String())
	}
	host := "127.0.0.1"
	if tcpAddr.IP != nil && !tcpAddr.IP.IsUnspecified() {
		host = tcpAddr.IP.String()
	}
	return fmt.Sprintf("%s://%s", scheme, net.JoinHostPort(host, strconv.Itoa(tcpAddr.Port)))
}
