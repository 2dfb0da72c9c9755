package logger

import (
	"encoding/json"
	"go.uber.org/zap"
)

var configFake = []byte(` {
		"level": "debug",
		"encoding": "json",
		"outputPaths": ["stdout"],
	    "errorOutputPaths": ["stderr"],
	    "initialFields": {"app": "electsim"},
	    "encoderConfig": {
	        "messageKey": "m",
	        "levelKey": "l",
	        "levelEncoder": "lowercase"
	    }
	}`)

// CreateFakeLogger installs a debug json logger writing to stdout, for tests.
func CreateFakeLogger() {
	cfg := zap.Config{}
	_ = json.Unmarshal(configFake, &cfg)
	CreateLogger(cfg)
}
