package config

import (
	"os"

	"github.com/San4eeez/Cruzak/pkg/consts"
	"go.uber.org/fx"
)

// Module provides the *Config for the run. The file named by CRUZAK_CONFIG is
// loaded when set, otherwise cruzak.yaml is used when present and defaults
// apply when it isn't. The root command reloads it when --config is passed.
var Module = fx.Module("config", fx.Provide(
	func() (*Config, error) {
		return Load(os.Getenv(consts.ConfigEnvVar))
	},
))
