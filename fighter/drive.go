package fighter

// Intent is one tick of player input for a fighter.
type Intent struct {
	MoveLeft  bool // held
	MoveRight bool // held
	Block     bool // held
	Jump      bool // pressed this tick
	Attack    bool // pressed this tick
	Release   bool // any action released this tick
}

// Drive applies in to the fighter the way the duel loop does it: a release
// stops everything, held actions are then reapplied, and an attack swings
// once per press. Update is not called.
func (f *Fighter) Drive(in Intent, opponent *Fighter) (bool, error) {
	if in.Release {
		f.Stop()
	}
	switch {
	case in.MoveLeft:
		f.MoveLeft()
	case in.MoveRight:
		f.MoveRight()
	}
	if in.Jump {
		f.Jump()
	}
	if in.Block {
		f.Block()
	}
	if in.Attack {
		return f.Attack(opponent)
	}
	return false, nil
}

// Clash resolves the swings two opponents pressed on the same tick. Both
// are judged against the state before either lands, so a trade hits both
// fighters even when the first blow is lethal.
func Clash(a, b *Fighter, aSwings, bSwings bool) (aHit, bHit bool, err error) {
	if a == nil || b == nil {
		return false, false, ErrNilOpponent
	}

	aSwings = aSwings && !a.dead
	bSwings = bSwings && !b.dead
	aHit = aSwings && a.lands(b)
	bHit = bSwings && b.lands(a)

	if aSwings {
		a.attacking = true
	}
	if bSwings {
		b.attacking = true
	}
	if aHit {
		a.strike(b)
	}
	if bHit {
		b.strike(a)
	}
	return aHit, bHit, nil
}
