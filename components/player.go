package components

import (
	"github.com/automoto/laststand/player"
	"github.com/automoto/laststand/signal"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *player.Controller

	// Attacks raised by the controller, drained by the shot system.
	PendingAttacks []player.Attack
	attackSub      signal.Subscription
}

// Attach routes the controller's attack events into PendingAttacks.
func (p *PlayerData) Attach(c *player.Controller) {
	p.Detach()
	p.Controller = c
	p.attackSub = c.Attacks().Subscribe(func(a player.Attack) {
		p.PendingAttacks = append(p.PendingAttacks, a)
	})
}

func (p *PlayerData) Detach() {
	if p.Controller != nil && p.attackSub != 0 {
		p.Controller.Attacks().Unsubscribe(p.attackSub)
	}
	p.attackSub = 0
}

var Player = donburi.NewComponentType[PlayerData]()
