package utils

import (
	"github.com/circlehub/circlehub/utils/dotenv"
	"github.com/circlehub/circlehub/utils/flag"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

// InitTracer starts the Datadog tracer. Only call from a service main.
func InitTracer() {
	env := dotenv.DevEnv
	if dotenv.IsProdEnv() {
		env = dotenv.ProdEnv
	}

	tracer.Start(
		tracer.WithService(flag.ServiceName),
		tracer.WithEnv(env),
	)
}

// Stop tracer, OK to be closed multiple times
func CloseTracer() {
	tracer.Stop()
}
