package router

import "go.uber.org/fx"

// Module provides the back-office gin engine.
var Module = fx.Provide(Setup)
