package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(CircuitMembership), "*"),
	wire.Bind(new(MembershipResolver), new(*CircuitMembership)),

	wire.Struct(new(RewardService), "*"),
	wire.Bind(new(IRewardService), new(*RewardService)),

	wire.Struct(new(ProgressService), "*"),
	wire.Bind(new(IProgressService), new(*ProgressService)),
)
