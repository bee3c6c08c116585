//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewProgress,
	wire.Bind(new(ProgressRepo), new(*Progress)),
	NewCircuit,
	wire.Bind(new(CircuitRepo), new(*Circuit)),
	NewPointRule,
	NewPointLog,
	wire.Bind(new(PointLogRepo), new(*PointLog)),
)
