package config

import (
	"flag"

	"github.com/TecharoHQ/requestsink"
)

// PortFlag registers -port on fs. flagenv fills it from PORT; when neither is
// given it is requestsink.DefaultPort.
func PortFlag(fs *flag.FlagSet) *string {
	return fs.String("port", requestsink.DefaultPort, "TCP port to listen on, on every interface")
}
