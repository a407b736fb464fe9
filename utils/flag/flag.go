/*
flag Package set up cli flags shared across services

Usage:

	Flags listed in this package are shared across boundaries and service-agnostic
	For service dependent flags please define in their respective package
*/

package flag

import (
	"flag"
)

const (
	APIServer = "api_server"
)

var (
	IsDevelopment bool
	ServiceName   string
	ByPassAuth    bool
)

func init() {
	flag.BoolVar(&IsDevelopment, "dev", true, "set to true if the current run is for development. default value is true")
	flag.StringVar(&ServiceName, "service", APIServer, "name of the service to run")
	flag.BoolVar(&ByPassAuth, "bypass_auth", false, "set to true to skip JWT validation, local development only")
}

// ParseFlags must be called from main before any flag value is read.
// Parsing cannot happen in init: test binaries register their own flags
// after package initialization.
func ParseFlags() {
	if !flag.Parsed() {
		flag.Parse()
	}
}
