package app

import "liaptui/internal/domain"

// RequestRedeal opens a redeal vote. Only a weak-hand player may request,
// only during preparation with no session already running.
func (s *Service) RequestRedeal(g *domain.Game, actor string) ([]Event, error) {
	seat, err := seatedActor(g, actor, domain.PhasePreparation)
	if err != nil {
		return nil, err
	}
	if g.Redeal != nil {
		return nil, domain.Conflictf("redeal_active", "a redeal vote is already running")
	}
	if g.RedealsThisRound >= s.rules.MaxRedealsPerRound {
		return nil, domain.Conflictf("redeal_cap_reached", "round already redealt %d times", g.RedealsThisRound)
	}
	if !g.Players[seat].Weak() {
		return nil, domain.Conflictf("hand_not_weak", "only a weak hand may request a redeal")
	}

	session := domain.NewRedealSession(seat, g.WeakSeats())
	g.Redeal = session

	auto := make([]int, 0, len(session.Votes))
	for voter := 0; voter < domain.NumPlayers; voter++ {
		if session.HasVoted(voter) {
			auto = append(auto, voter)
		}
	}

	events := []Event{{
		Kind: EventRedealOpened,
		Payload: RedealOpenedPayload{
			RedealID:      session.ID,
			RequesterSeat: seat,
			AutoAccepted:  auto,
			PendingSeats:  session.PendingSeats(),
		},
	}}

	// All four hands weak: nobody is left to vote.
	if session.AllAccepted() {
		events = append(events, s.executeRedeal(g)...)
	}
	return events, nil
}

// KeepDeal records a weak seat waiving its right to request a redeal.
// Once every weak seat has waived, the deal stands and declaration
// begins with the multiplier untouched.
func (s *Service) KeepDeal(g *domain.Game, actor string) ([]Event, error) {
	seat, err := seatedActor(g, actor, domain.PhasePreparation)
	if err != nil {
		return nil, err
	}
	if g.Redeal != nil {
		return nil, domain.Conflictf("redeal_active", "a redeal vote is already running")
	}
	if !g.Players[seat].Weak() {
		return nil, domain.Conflictf("hand_not_weak", "only a weak hand holds a redeal request to waive")
	}
	if g.RedealPasses[seat] {
		return nil, domain.Conflictf("already_waived", "seat %d already kept the deal", seat)
	}

	g.RedealPasses[seat] = true

	var pending []int
	for _, weak := range g.WeakSeats() {
		if !g.RedealPasses[weak] {
			pending = append(pending, weak)
		}
	}

	events := []Event{{
		Kind:    EventDealKept,
		Payload: DealKeptPayload{Seat: seat, PendingSeats: pending},
	}}
	if len(pending) == 0 {
		events = append(events, s.enterDeclaration(g)...)
	}
	return events, nil
}

// CloseRedealWindow forces the preparation phase forward when weak seats
// never requested a redeal within the orchestrator's window. A running
// vote keeps the window open.
func (s *Service) CloseRedealWindow(g *domain.Game) ([]Event, error) {
	if g.Phase != domain.PhasePreparation {
		return nil, domain.Conflictf("phase_mismatch", "no redeal window outside preparation")
	}
	if g.Redeal != nil {
		return nil, domain.Conflictf("redeal_active", "a redeal vote is already running")
	}
	return s.enterDeclaration(g), nil
}

// AcceptRedeal records an accept vote; a unanimous result executes the
// redeal immediately.
func (s *Service) AcceptRedeal(g *domain.Game, actor, redealID string) ([]Event, error) {
	seat, session, err := s.voteContext(g, actor, redealID)
	if err != nil {
		return nil, err
	}

	session.Votes[seat] = true
	events := []Event{{
		Kind:    EventRedealVote,
		Payload: RedealVotePayload{Seat: seat, Accept: true},
	}}

	if session.AllAccepted() {
		events = append(events, s.executeRedeal(g)...)
	}
	return events, nil
}

// DeclineRedeal cancels the vote: the deal stands, the decliner claims the
// round start, and the multiplier is left alone.
func (s *Service) DeclineRedeal(g *domain.Game, actor, redealID string) ([]Event, error) {
	seat, _, err := s.voteContext(g, actor, redealID)
	if err != nil {
		return nil, err
	}
	return s.cancelRedeal(g, seat, false), nil
}

// TimeoutPendingVote substitutes an implicit decline for the first seat
// that never answered the running vote. Timeouts are never treated as
// accepts.
func (s *Service) TimeoutPendingVote(g *domain.Game) ([]Event, error) {
	if g.Phase != domain.PhasePreparation || g.Redeal == nil {
		return nil, domain.Conflictf("no_redeal_vote", "no redeal vote is running")
	}
	pending := g.Redeal.PendingSeats()
	if len(pending) == 0 {
		return nil, domain.Invariantf("vote_unresolved", "redeal vote has no pending seats yet was not resolved")
	}
	return s.cancelRedeal(g, pending[0], true), nil
}

func (s *Service) cancelRedeal(g *domain.Game, declinerSeat int, implicit bool) []Event {
	g.Redeal = nil
	g.ClaimStart(declinerSeat)

	events := []Event{
		{Kind: EventRedealVote, Payload: RedealVotePayload{Seat: declinerSeat, Accept: false, Implicit: implicit}},
		{Kind: EventRedealCancelled, Payload: RedealCancelledPayload{DeclinerSeat: declinerSeat}},
	}
	return append(events, s.enterDeclaration(g)...)
}

// executeRedeal re-deals all hands, raises the multiplier and re-runs the
// weak-hand check, which may leave the phase waiting on a fresh request.
func (s *Service) executeRedeal(g *domain.Game) []Event {
	g.Redeal = nil
	g.RedealPasses = make(map[int]bool)
	g.RedealMultiplier++
	g.RedealsThisRound++
	g.SetHands(s.deal())

	events := []Event{{
		Kind: EventRedealExecuted,
		Payload: RedealExecutedPayload{
			Multiplier:       g.RedealMultiplier,
			RedealsThisRound: g.RedealsThisRound,
		},
	}}
	events = append(events, handEvents(g)...)
	return append(events, s.preparationOutcome(g)...)
}

// voteContext validates a manual redeal vote: running session, matching
// single-use token, voter seated and not yet on record.
func (s *Service) voteContext(g *domain.Game, actor, redealID string) (int, *domain.RedealSession, error) {
	seat, err := seatedActor(g, actor, domain.PhasePreparation)
	if err != nil {
		return -1, nil, err
	}
	if g.Redeal == nil {
		return -1, nil, domain.Conflictf("no_redeal_vote", "no redeal vote is running")
	}
	if g.Redeal.ID != redealID {
		return -1, nil, domain.Conflictf("redeal_id_mismatch", "vote carries a stale redeal token")
	}
	if g.Redeal.HasVoted(seat) {
		return -1, nil, domain.Conflictf("already_voted", "seat %d already has a vote on record", seat)
	}
	return seat, g.Redeal, nil
}
