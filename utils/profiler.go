package utils

import (
	"github.com/circlehub/circlehub/utils/dotenv"
	"github.com/circlehub/circlehub/utils/flag"
	Logger "github.com/circlehub/circlehub/utils/log"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"
)

// InitProfiler starts the Datadog profiler. Only call from a service main.
func InitProfiler() {
	env := dotenv.DevEnv
	if dotenv.IsProdEnv() {
		env = dotenv.ProdEnv
	}

	if err := profiler.Start(
		profiler.WithService(flag.ServiceName),
		profiler.WithEnv(env),
		profiler.WithProfileTypes(
			profiler.CPUProfile,
			profiler.HeapProfile,
			// The profiles below are disabled by
			// default to keep overhead low, but
			// can be enabled as needed.
			// profiler.BlockProfile,
			// profiler.MutexProfile,
			// profiler.GoroutineProfile,
		),
	); err != nil {
		Logger.Log.Fatal(err)
	}
}

// Stop profiler, OK to be closed multiple times
func CloseProfiler() {
	profiler.Stop()
}
