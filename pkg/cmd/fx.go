package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(importCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(preview, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(schemaCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
