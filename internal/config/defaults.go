package config

import (
	"os"
	"time"
)

var defaultConfig = StructuredConfig{
	App: App{
		Version:  "0.1.0",
		LogLevel: "info",
	},
	Auth: Auth{
		TokenIssuer:   "f4f-study-portal",
		TokenDuration: 12 * time.Hour,
	},
	Storage: Storage{
		Images: Images{
			Backend: ImageBackendFile,
			Dir:     "images",
		},
	},
	Server: Server{
		HTTPAddress:     "localhost:8080",
		GRPCAddress:     "localhost:9090",
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		MaxUploadSize:   10 << 20,
	},
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}
