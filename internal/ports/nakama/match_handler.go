package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"liaptui/internal/app"
	"liaptui/internal/bot"
	"liaptui/internal/config"
	"liaptui/internal/domain"
	"liaptui/internal/ports"
)

// matchLabel is the queryable match listing entry.
type matchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// MatchState holds the authoritative runtime state for the Nakama match
// handler. The match loop is the single writer; nothing here needs locks.
type MatchState struct {
	Seats     [domain.NumPlayers]string // user IDs, empty string means seat is empty
	Names     [domain.NumPlayers]string // display names bound to seats
	OwnerSeat int                       // seat of the human allowed to start games

	Presences map[string]runtime.Presence // userID -> presence, humans only
	App       *app.Service
	Game      *domain.Game // nil while in lobby
	Cfg       *config.GameConfig
	Events    ports.EventSink
	EventSeq  int64
	MatchID   string

	Tick     int64
	TickRate int

	// RedealDeadline is the tick when the open redeal window or vote
	// times out; zero means no deadline is armed.
	RedealDeadline int64
	windowVote     bool
	windowRedeals  int

	BotWaitUntil      int64
	SinglePlayerSince int64
	Bots              map[int]*bot.Agent // seat -> agent
}

func (ms *MatchState) openSeatCount() int {
	count := 0
	for _, userID := range ms.Seats {
		if userID == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOfUser(userID string) int {
	for seat, id := range ms.Seats {
		if id == userID {
			return seat
		}
	}
	return -1
}

func (ms *MatchState) firstHumanSeat() int {
	for seat, userID := range ms.Seats {
		if userID != "" && !bot.IsBot(userID) {
			return seat
		}
	}
	return -1
}

// agentAt returns the bot agent for a seat, creating a standard one for
// seats converted without an identity.
func (ms *MatchState) agentAt(seat int) *bot.Agent {
	if agent, ok := ms.Bots[seat]; ok {
		return agent
	}
	brain, _ := bot.NewBrain(bot.BotLevelStandard)
	agent := bot.NewAgent(fmt.Sprintf("bot:seat%d", seat), ms.Names[seat], seat, brain)
	ms.Bots[seat] = agent
	return agent
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	cfg := config.GetGameConfig()
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		cfg.ApplyEnv(env)
	}

	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)

	state := &MatchState{
		OwnerSeat: -1,
		Presences: make(map[string]runtime.Presence),
		App: app.NewService(nil, app.Rules{
			WinThreshold:       cfg.WinThreshold,
			MaxRounds:          cfg.MaxRounds,
			MaxRedealsPerRound: cfg.MaxRedealsPerRound,
		}),
		Cfg:      cfg,
		Events:   NewStorageEventSink(nk),
		MatchID:  matchID,
		TickRate: 1,
		Bots:     make(map[int]*bot.Agent),
	}

	label, err := json.Marshal(matchLabel{Open: domain.NumPlayers, Game: "liaptui", Phase: "lobby"})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}
	return state, state.TickRate, string(label)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// A reconnecting player always gets their seat back.
	if matchState.seatOfUser(presence.GetUserId()) >= 0 {
		return matchState, true, ""
	}
	if matchState.openSeatCount() > 0 {
		return matchState, true, ""
	}

	// A bot seat can still be handed to a human while in the lobby.
	if matchState.Game == nil {
		for _, userID := range matchState.Seats {
			if bot.IsBot(userID) {
				return matchState, true, ""
			}
		}
	}
	return matchState, false, "match full"
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}
	matchState.Tick = tick

	for _, p := range presences {
		userID := p.GetUserId()
		matchState.Presences[userID] = p

		if seat := matchState.seatOfUser(userID); seat >= 0 {
			// Reconnect: a bot has been holding the seat.
			if matchState.Game != nil {
				events, err := matchState.App.ReclaimSeat(matchState.Game, matchState.Names[seat])
				if err != nil {
					logger.Error("MatchJoin: Reclaim failed for %s: %v", userID, err)
				} else {
					delete(matchState.Bots, seat)
					mh.dispatchEvents(ctx, matchState, dispatcher, logger, events)
					mh.sendPrivateHand(matchState, dispatcher, logger, seat)
				}
				logger.Info("MatchJoin: %s reclaimed seat %d", userID, seat)
			}
			continue
		}

		assigned := -1
		for seat, occupant := range matchState.Seats {
			if occupant == "" {
				assigned = seat
				break
			}
		}
		if assigned < 0 && matchState.Game == nil {
			for seat, occupant := range matchState.Seats {
				if bot.IsBot(occupant) {
					logger.Info("MatchJoin: Replacing bot %s with %s in seat %d", occupant, userID, seat)
					delete(matchState.Bots, seat)
					assigned = seat
					break
				}
			}
		}
		if assigned < 0 {
			logger.Warn("MatchJoin: User %s joined but no seat was available", userID)
			continue
		}

		matchState.Seats[assigned] = userID
		name := p.GetUsername()
		if name == "" {
			name = userID
		}
		matchState.Names[assigned] = name
	}

	if matchState.OwnerSeat < 0 || bot.IsBot(matchState.Seats[matchState.OwnerSeat]) {
		matchState.OwnerSeat = matchState.firstHumanSeat()
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)
	return matchState
}

// MatchLeave frees lobby seats but converts in-game seats to bots so the
// round can finish; the seat is held for a reconnect.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}
	matchState.Tick = tick

	gameRunning := matchState.Game != nil && matchState.Game.Phase != domain.PhaseGameOver

	for _, p := range presences {
		userID := p.GetUserId()
		delete(matchState.Presences, userID)

		seat := matchState.seatOfUser(userID)
		if seat < 0 {
			continue
		}

		if gameRunning {
			events, err := matchState.App.ConvertSeatToBot(matchState.Game, matchState.Names[seat])
			if err != nil {
				logger.Error("MatchLeave: Convert failed for %s: %v", userID, err)
				continue
			}
			matchState.agentAt(seat)
			mh.dispatchEvents(ctx, matchState, dispatcher, logger, events)
			logger.Info("MatchLeave: Seat %d handed to a bot for %s", seat, userID)
		} else {
			matchState.Seats[seat] = ""
			matchState.Names[seat] = ""
		}
	}

	if len(matchState.Presences) == 0 {
		logger.Info("MatchLeave: Terminating match with no humans connected")
		return nil
	}

	if matchState.OwnerSeat < 0 || matchState.Presences[matchState.Seats[matchState.OwnerSeat]] == nil {
		matchState.OwnerSeat = matchState.firstHumanSeat()
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}
	matchState.Tick = tick

	for _, msg := range messages {
		mh.handleMessage(ctx, matchState, dispatcher, logger, msg)
	}

	mh.enforceRedealDeadline(ctx, matchState, dispatcher, logger)
	mh.processBots(ctx, matchState, dispatcher, logger)
	matchState.refreshRedealDeadline()

	return matchState
}

func (mh *matchHandler) handleMessage(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	userID := msg.GetUserId()
	seat := state.seatOfUser(userID)
	if seat < 0 {
		logger.Warn("handleMessage: Message from unseated user %s", userID)
		return
	}

	if msg.GetOpCode() == OpStartGame {
		mh.handleStartGame(ctx, state, dispatcher, logger, seat, userID)
		return
	}

	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, userID, domain.Conflictf("no_game", "no game is running"))
		return
	}
	actor := state.Names[seat]

	var events []app.Event
	var err error
	switch msg.GetOpCode() {
	case OpDeclare:
		var req DeclareRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			events, err = state.App.Declare(state.Game, actor, req.Declared)
		}
	case OpPlayPieces:
		var req PlayPiecesRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			events, err = state.App.PlayPieces(state.Game, actor, req.Indices)
		}
	case OpRequestRedeal:
		events, err = state.App.RequestRedeal(state.Game, actor)
	case OpAcceptRedeal:
		var req RedealVoteRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			events, err = state.App.AcceptRedeal(state.Game, actor, req.RedealID)
		}
	case OpDeclineRedeal:
		var req RedealVoteRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			events, err = state.App.DeclineRedeal(state.Game, actor, req.RedealID)
		}
	case OpKeepDeal:
		events, err = state.App.KeepDeal(state.Game, actor)
	case OpMarkReady:
		var req MarkReadyRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			events, err = state.App.MarkReady(state.Game, actor, req.Transition)
		}
	default:
		logger.Warn("handleMessage: Unknown opcode %d from %s", msg.GetOpCode(), userID)
		return
	}

	if err != nil {
		logger.Debug("handleMessage: op %d from seat %d rejected: %v", msg.GetOpCode(), seat, err)
		mh.sendError(state, dispatcher, logger, userID, err)
		return
	}
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat int, userID string) {
	if state.Game != nil && state.Game.Phase != domain.PhaseGameOver {
		mh.sendError(state, dispatcher, logger, userID, domain.Conflictf("game_running", "a game is already in progress"))
		return
	}
	if seat != state.OwnerSeat {
		mh.sendError(state, dispatcher, logger, userID, domain.Conflictf("not_owner", "only the match owner may start the game"))
		return
	}
	if state.openSeatCount() > 0 {
		mh.sendError(state, dispatcher, logger, userID, domain.Conflictf("seats_open", "all four seats must be filled"))
		return
	}

	var names [domain.NumPlayers]string
	var bots [domain.NumPlayers]bool
	used := make(map[string]bool, domain.NumPlayers)
	for i, occupant := range state.Seats {
		name := state.Names[i]
		if name == "" {
			name = occupant
		}
		for used[name] {
			name = fmt.Sprintf("%s.%d", name, i)
		}
		used[name] = true
		state.Names[i] = name
		names[i] = name
		bots[i] = bot.IsBot(occupant)
	}

	game, events, err := state.App.StartGame(names, bots)
	if err != nil {
		logger.Error("handleStartGame: %v", err)
		mh.sendError(state, dispatcher, logger, userID, err)
		return
	}
	state.Game = game
	state.BotWaitUntil = 0

	mh.updateLabel(state, dispatcher, logger)
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
	logger.Info("handleStartGame: Game started by seat %d", seat)
}

// enforceRedealDeadline turns an expired preparation window into the
// matching implicit action: a pending vote times out as a decline, an
// idle window closes into declaration.
func (mh *matchHandler) enforceRedealDeadline(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	g := state.Game
	if g == nil || g.Phase != domain.PhasePreparation || state.RedealDeadline == 0 || state.Tick < state.RedealDeadline {
		return
	}

	var events []app.Event
	var err error
	if g.Redeal != nil {
		events, err = state.App.TimeoutPendingVote(g)
	} else {
		events, err = state.App.CloseRedealWindow(g)
	}
	if err != nil {
		logger.Error("enforceRedealDeadline: %v", err)
		state.RedealDeadline = 0
		return
	}
	state.RedealDeadline = 0
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
}

// refreshRedealDeadline arms the preparation timer, re-arming whenever the
// window changes shape (a vote opens or a redeal lands new hands).
func (ms *MatchState) refreshRedealDeadline() {
	g := ms.Game
	if g == nil || g.Phase != domain.PhasePreparation {
		ms.RedealDeadline = 0
		return
	}
	voteOpen := g.Redeal != nil
	if ms.RedealDeadline == 0 || voteOpen != ms.windowVote || g.RedealsThisRound != ms.windowRedeals {
		ms.RedealDeadline = ms.Tick + int64(ms.Cfg.RedealVoteTimeoutSeconds*ms.TickRate)
		ms.windowVote = voteOpen
		ms.windowRedeals = g.RedealsThisRound
	}
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	mh.autoFillLobby(state, dispatcher, logger)

	g := state.Game
	if g == nil || g.Phase == domain.PhaseGameOver {
		state.BotWaitUntil = 0
		return
	}

	seat, act := mh.pendingBotAction(state)
	if act == nil {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		state.BotWaitUntil = state.Tick + int64(state.Cfg.BotActionDelaySeconds*state.TickRate)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	events, err := act()
	if err != nil {
		logger.Error("processBots: Bot at seat %d failed to act: %v", seat, err)
		return
	}
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
}

// pendingBotAction finds the next action a bot seat owes the game, if any.
func (mh *matchHandler) pendingBotAction(state *MatchState) (int, func() ([]app.Event, error)) {
	g := state.Game

	switch g.Phase {
	case domain.PhasePreparation:
		if g.Redeal != nil {
			for _, seat := range g.Redeal.PendingSeats() {
				if !g.Players[seat].IsBot {
					continue
				}
				agent := state.agentAt(seat)
				actor := state.Names[seat]
				redealID := g.Redeal.ID
				return seat, func() ([]app.Event, error) {
					if agent.WantsRedeal(g) {
						return state.App.AcceptRedeal(g, actor, redealID)
					}
					return state.App.DeclineRedeal(g, actor, redealID)
				}
			}
			return -1, nil
		}
		for _, seat := range g.WeakSeats() {
			if !g.Players[seat].IsBot || g.RedealPasses[seat] {
				continue
			}
			agent := state.agentAt(seat)
			actor := state.Names[seat]
			return seat, func() ([]app.Event, error) {
				if agent.WantsRedeal(g) {
					return state.App.RequestRedeal(g, actor)
				}
				return state.App.KeepDeal(g, actor)
			}
		}
	case domain.PhaseDeclaration:
		seat := g.CurrentSeat
		if g.Players[seat].IsBot {
			agent := state.agentAt(seat)
			actor := state.Names[seat]
			return seat, func() ([]app.Event, error) {
				return state.App.Declare(g, actor, agent.Declare(g))
			}
		}
	case domain.PhaseTurn:
		seat := g.CurrentSeat
		if g.Players[seat].IsBot {
			agent := state.agentAt(seat)
			actor := state.Names[seat]
			return seat, func() ([]app.Event, error) {
				indices, err := agent.Play(g)
				if err != nil {
					return nil, err
				}
				return state.App.PlayPieces(g, actor, indices)
			}
		}
	case domain.PhaseScoring:
		if g.ReadyFor == "" {
			return -1, nil
		}
		for seat, p := range g.Players {
			if p.IsBot && !g.Ready[seat] {
				actor := state.Names[seat]
				transition := g.ReadyFor
				return seat, func() ([]app.Event, error) {
					return state.App.MarkReady(g, actor, transition)
				}
			}
		}
	}
	return -1, nil
}

// autoFillLobby adds bots to open seats once humans have waited out the
// fill delay.
func (mh *matchHandler) autoFillLobby(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game != nil || len(state.Presences) == 0 || state.openSeatCount() == 0 {
		state.SinglePlayerSince = 0
		return
	}

	if state.SinglePlayerSince == 0 {
		state.SinglePlayerSince = state.Tick
		return
	}
	if state.Tick-state.SinglePlayerSince < int64(state.Cfg.BotAutoFillDelaySeconds*state.TickRate) {
		return
	}
	state.SinglePlayerSince = 0

	for seat, occupant := range state.Seats {
		if occupant != "" {
			continue
		}
		identity := bot.GetBotIdentity(seat)
		brain, err := bot.NewBrain(bot.LevelFromDifficulty(identity.Difficulty))
		if err != nil {
			logger.Error("autoFillLobby: %v", err)
			continue
		}
		state.Seats[seat] = identity.UserID
		state.Names[seat] = identity.DisplayName
		state.Bots[seat] = bot.NewAgent(identity.UserID, identity.DisplayName, seat, brain)
		logger.Info("autoFillLobby: Added bot %s to seat %d", identity.DisplayName, seat)
	}

	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastSnapshot(state, dispatcher, logger)
}

// dispatchEvents converts app events to wire messages, records them in the
// event history and broadcasts them, honoring per-event recipients.
func (mh *matchHandler) dispatchEvents(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	records := make([]ports.EventRecord, 0, len(events))

	for _, ev := range events {
		opCode, payload := wireEvent(ev)
		if opCode == 0 {
			logger.Warn("dispatchEvents: Unknown event kind %q", ev.Kind)
			continue
		}

		state.EventSeq++
		records = append(records, ports.EventRecord{
			Sequence: state.EventSeq,
			Tick:     state.Tick,
			Kind:     string(ev.Kind),
			Payload:  payload,
		})

		bytes, err := json.Marshal(payload)
		if err != nil {
			logger.Error("dispatchEvents: Failed to marshal %q: %v", ev.Kind, err)
			continue
		}

		var recipients []runtime.Presence
		if len(ev.Recipients) > 0 {
			for _, name := range ev.Recipients {
				if p := mh.presenceForName(state, name); p != nil {
					recipients = append(recipients, p)
				}
			}
			// Targeted events with no connected recipient (bot seats)
			// must not leak to the table.
			if len(recipients) == 0 {
				continue
			}
		}
		dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
	}

	if state.Events != nil && len(records) > 0 {
		if err := state.Events.Append(ctx, state.MatchID, records); err != nil {
			logger.Error("dispatchEvents: Failed to persist events: %v", err)
		}
	}

	mh.afterEvents(state, dispatcher, logger, events)
}

// afterEvents applies handler-level bookkeeping the event stream implies.
func (mh *matchHandler) afterEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case app.EventGameEnded:
			// Back to the lobby; seats stay occupied for a rematch.
			state.Game = nil
			state.BotWaitUntil = 0
			state.RedealDeadline = 0
			mh.updateLabel(state, dispatcher, logger)
		case app.EventPhaseChanged:
			state.BotWaitUntil = 0
		}
	}
}

func (mh *matchHandler) presenceForName(state *MatchState, name string) runtime.Presence {
	for seat, seatName := range state.Names {
		if seatName == name {
			if p, ok := state.Presences[state.Seats[seat]]; ok {
				return p
			}
			return nil
		}
	}
	return nil
}

// sendPrivateHand re-sends a seat's current hand, used on reconnect.
func (mh *matchHandler) sendPrivateHand(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat int) {
	g := state.Game
	if g == nil || len(g.Players[seat].Hand) == 0 {
		return
	}
	p, ok := state.Presences[state.Seats[seat]]
	if !ok {
		return
	}
	bytes, err := json.Marshal(HandDealtEvent{Seat: seat, Hand: toWirePieces(g.Players[seat].Hand)})
	if err != nil {
		logger.Error("sendPrivateHand: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpHandDealt, bytes, []runtime.Presence{p}, nil, true)
}

// sendError sends a structured rejection to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, actionErr error) {
	payload := GameErrorEvent{
		Kind:    domain.KindOf(actionErr).String(),
		Code:    domain.CodeOf(actionErr),
		Message: actionErr.Error(),
	}
	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("sendError: Failed to marshal: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		return
	}
	dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) broadcastSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	snapshot := MatchSnapshot{Phase: "lobby", CurrentSeat: -1}
	if g := state.Game; g != nil {
		snapshot.Phase = string(g.Phase)
		snapshot.RoundNumber = g.RoundNumber
		snapshot.CurrentSeat = g.CurrentSeat
		snapshot.Multiplier = g.RedealMultiplier
	}

	for seat, userID := range state.Seats {
		if userID == "" {
			continue
		}
		info := SeatInfo{
			Seat:        seat,
			UserID:      userID,
			DisplayName: state.Names[seat],
			IsBot:       bot.IsBot(userID),
		}
		if g := state.Game; g != nil {
			info.IsBot = g.Players[seat].IsBot
			info.PiecesRemaining = len(g.Players[seat].Hand)
			info.Score = g.Players[seat].Score
		}
		snapshot.Seats = append(snapshot.Seats, info)
	}

	bytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastSnapshot: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchSnapshot, bytes, nil, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if g := state.Game; g != nil {
		phase = string(g.Phase)
	}
	label, err := json.Marshal(matchLabel{Open: state.openSeatCount(), Game: "liaptui", Phase: phase})
	if err != nil {
		logger.Error("updateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(label)); err != nil {
		logger.Error("updateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
