package usecase

import (
	"io"
	"log/slog"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/sos-client/internal/apperror"
	"github.com/rocketscienceinc/sos-client/internal/entity"
)

var (
	alice   = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	bob     = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	mallory = common.HexToAddress("0x00000000000000000000000000000000000000c3")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func move(player common.Address, symbol entity.Cell, placement uint8) entity.MoveMade {
	return entity.MoveMade{Player: player, Symbol: symbol, Placement: placement}
}

func playing(t *testing.T, local common.Address) entity.GameSession {
	t.Helper()

	session, outcome := Reconcile(entity.NewSession(local), entity.SessionCreated{FirstPlayer: alice, SecondPlayer: bob})
	require.NoError(t, outcome.Fault)
	require.True(t, session.IsPlaying())

	return session
}

func feed(t *testing.T, session entity.GameSession, events ...entity.Event) (entity.GameSession, Outcome) {
	t.Helper()

	var outcome Outcome
	for _, event := range events {
		session, outcome = Reconcile(session, event)
		require.NoError(t, outcome.Fault, event.Kind())
	}

	return session, outcome
}

func TestReconcile_Win(t *testing.T) {
	events := []entity.Event{
		move(alice, entity.S, 1),
		move(bob, entity.O, 5),
		move(alice, entity.S, 9),
	}

	t.Run("Completing player wins", func(t *testing.T) {
		// Given: alice is the local player of a game in progress
		session := playing(t, alice)

		// When: S at 1, O at 5, S at 9 arrive
		session, outcome := feed(t, session, events...)

		// Then: the diagonal wins for alice
		require.True(t, session.IsEnded())
		assert.Equal(t, entity.ResultWon, session.Result())
		assert.Equal(t, []int{1, 5, 9}, session.View().WinningLine)
		assert.Equal(t, entity.NoticeEnded, outcome.Notice().Kind)
	})

	t.Run("Other player loses on the same events", func(t *testing.T) {
		// Given: bob is the local player of the same game
		session := playing(t, bob)

		// When: the same events arrive
		session, _ = feed(t, session, events...)

		// Then: bob lost
		assert.Equal(t, entity.ResultLost, session.Result())
	})
}

func TestReconcile_DrawOnlyAfterLastCell(t *testing.T) {
	// Given: a game in progress and nine moves that never form S-O-S
	session := playing(t, alice)
	symbols := []entity.Cell{
		entity.O, entity.S, entity.O,
		entity.S, entity.S, entity.S,
		entity.O, entity.S, entity.O,
	}

	// When: the moves arrive one by one
	for i, symbol := range symbols {
		player := alice
		if i%2 == 1 {
			player = bob
		}

		var outcome Outcome
		session, outcome = Reconcile(session, move(player, symbol, uint8(i+1)))
		require.NoError(t, outcome.Fault)

		// Then: the game keeps going until the ninth cell
		if i < len(symbols)-1 {
			require.True(t, session.IsPlaying(), "move %d", i+1)
			assert.Equal(t, entity.NoticeMove, outcome.Notice().Kind)
		}
	}

	assert.Equal(t, entity.ResultDraw, session.Result())
	assert.Nil(t, session.View().WinningLine)
}

func TestReconcile_SessionCreated(t *testing.T) {
	t.Run("Lobby when the second seat is free", func(t *testing.T) {
		// Given: a fresh session for alice
		session := entity.NewSession(alice)

		// When: the ledger announces alice's game without an opponent
		next, outcome := Reconcile(session, entity.SessionCreated{FirstPlayer: alice, SecondPlayer: entity.NoOpponent})

		// Then: alice waits in the lobby
		require.NoError(t, outcome.Fault)
		assert.True(t, next.IsWaiting())
		assert.True(t, next.IsBound())
	})

	t.Run("Opponent arrives in the lobby", func(t *testing.T) {
		session, _ := feed(t, entity.NewSession(alice),
			entity.JoinAcknowledged{},
			entity.SessionCreated{FirstPlayer: alice},
		)

		next, outcome := Reconcile(session, entity.SessionCreated{FirstPlayer: alice, SecondPlayer: bob})

		require.NoError(t, outcome.Fault)
		assert.True(t, next.IsPlaying())
		assert.Equal(t, bob, next.Opponent())
	})

	t.Run("Foreign games are ignored", func(t *testing.T) {
		session := entity.NewSession(alice)

		next, outcome := Reconcile(session, entity.SessionCreated{FirstPlayer: bob, SecondPlayer: mallory})

		assert.False(t, outcome.Applied)
		assert.Equal(t, session, next)
	})

	t.Run("Duplicate announcement is ignored", func(t *testing.T) {
		session := playing(t, alice)

		next, outcome := Reconcile(session, entity.SessionCreated{FirstPlayer: alice, SecondPlayer: bob})

		assert.False(t, outcome.Applied)
		assert.NoError(t, outcome.Fault)
		assert.Equal(t, session, next)
	})

	t.Run("Changed opponent mid game is a fault", func(t *testing.T) {
		session := playing(t, alice)

		next, outcome := Reconcile(session, entity.SessionCreated{FirstPlayer: alice, SecondPlayer: mallory})

		assert.ErrorIs(t, outcome.Fault, apperror.ErrReconciliationFault)
		assert.Equal(t, session, next)
	})

	t.Run("New game supersedes an ended one", func(t *testing.T) {
		// Given: a game alice already won
		session, _ := feed(t, playing(t, alice), move(alice, entity.S, 1), move(bob, entity.O, 2), move(alice, entity.S, 3))
		require.True(t, session.IsEnded())

		// When: a new game with mallory is announced
		next, outcome := Reconcile(session, entity.SessionCreated{FirstPlayer: mallory, SecondPlayer: alice, SessionID: "2"})

		// Then: a fresh game is in progress with a blank board and a higher version
		require.NoError(t, outcome.Fault)
		assert.True(t, next.IsPlaying())
		assert.Equal(t, entity.Board{}, next.Board)
		assert.Greater(t, next.Version, session.Version)
	})
}

func TestReconcile_Rematch(t *testing.T) {
	won := func(t *testing.T, local common.Address) entity.GameSession {
		t.Helper()

		session, _ := feed(t, playing(t, local), move(alice, entity.S, 1), move(bob, entity.O, 2), move(alice, entity.S, 3))
		require.True(t, session.IsEnded())

		return session
	}

	t.Run("Same first player opens a new lobby", func(t *testing.T) {
		// Given: alice won a game she created on a single-session ledger
		session := won(t, alice)

		// When: she creates another game and mallory joins it
		next, outcome := feed(t, session,
			entity.SessionCreated{FirstPlayer: alice, SecondPlayer: entity.NoOpponent},
			entity.SessionCreated{FirstPlayer: alice, SecondPlayer: mallory},
			move(mallory, entity.S, 5),
		)

		// Then: the new game is in progress with only mallory's move on the board
		assert.True(t, outcome.Applied)
		require.True(t, next.IsPlaying())
		assert.Equal(t, mallory, next.SecondPlayer)
		assert.Equal(t, entity.S, next.Board.SymbolAt(4))
		assert.Equal(t, entity.Blank, next.Board.SymbolAt(0))
	})

	t.Run("Same seats start a second game", func(t *testing.T) {
		// Given: bob lost a game against alice
		session := won(t, bob)

		// When: bob joins alice's next lobby again
		next, outcome := feed(t, session, entity.SessionCreated{FirstPlayer: alice, SecondPlayer: bob})

		// Then: a fresh game starts
		assert.True(t, outcome.Applied)
		assert.True(t, next.IsPlaying())
		assert.Equal(t, entity.Board{}, next.Board)
	})

	t.Run("Announcement overtakes the join acknowledgement", func(t *testing.T) {
		// Given: bob lost a game against alice
		session := won(t, bob)

		// When: the ledger announces the rematch before bob's join is acknowledged
		next, _ := feed(t, session,
			entity.SessionCreated{FirstPlayer: alice, SecondPlayer: bob},
			entity.JoinAcknowledged{},
			move(alice, entity.O, 7),
		)

		// Then: the late acknowledgement leaves the game bound and moves still land
		require.True(t, next.IsPlaying())
		assert.True(t, next.IsBound())
		assert.Equal(t, entity.O, next.Board.SymbolAt(6))
	})
}

func TestReconcile_Forfeit(t *testing.T) {
	t.Run("Opponent forfeit is a win", func(t *testing.T) {
		// Given: alice has placed a symbol in a game in progress
		session, _ := feed(t, playing(t, alice), move(alice, entity.S, 1))
		board := session.Board

		// When: the forfeit marker arrives for bob
		next, outcome := Reconcile(session, move(bob, entity.Blank, 0))

		// Then: alice won by timeout and the board did not change
		require.NoError(t, outcome.Fault)
		assert.Equal(t, entity.ResultWonByOpponentTimeout, next.Result())
		assert.Equal(t, board, next.Board)
	})

	t.Run("Own forfeit is a loss", func(t *testing.T) {
		session := playing(t, alice)

		next, outcome := Reconcile(session, move(alice, entity.Blank, 0))

		require.NoError(t, outcome.Fault)
		assert.Equal(t, entity.ResultLostByOwnTimeout, next.Result())
	})
}

func TestReconcile_Move(t *testing.T) {
	t.Run("Occupied cell is a fault and keeps the board", func(t *testing.T) {
		session, _ := feed(t, playing(t, alice), move(alice, entity.S, 4))

		next, outcome := Reconcile(session, move(bob, entity.O, 4))

		assert.ErrorIs(t, outcome.Fault, apperror.ErrReconciliationFault)
		assert.ErrorIs(t, outcome.Fault, apperror.ErrIllegalPlacement)
		assert.Equal(t, session, next)
	})

	t.Run("Faults for malformed moves", func(t *testing.T) {
		cases := map[string]entity.MoveMade{
			"outsider":          move(mallory, entity.S, 1),
			"placement too big": move(alice, entity.S, 10),
			"blank symbol":      move(alice, entity.Blank, 3),
			"unknown symbol":    move(alice, entity.Cell(7), 3),
		}

		for name, event := range cases {
			t.Run(name, func(t *testing.T) {
				session := playing(t, alice)

				next, outcome := Reconcile(session, event)

				assert.ErrorIs(t, outcome.Fault, apperror.ErrReconciliationFault)
				assert.Equal(t, session, next)
			})
		}
	})

	t.Run("Move in the lobby is a fault", func(t *testing.T) {
		session, _ := feed(t, entity.NewSession(alice), entity.SessionCreated{FirstPlayer: alice})

		_, outcome := Reconcile(session, move(alice, entity.S, 1))

		assert.ErrorIs(t, outcome.Fault, apperror.ErrReconciliationFault)
	})

	t.Run("Moves after the end are ignored", func(t *testing.T) {
		session, _ := feed(t, playing(t, alice), move(alice, entity.Blank, 0))

		next, outcome := Reconcile(session, move(bob, entity.S, 5))

		assert.NoError(t, outcome.Fault)
		assert.False(t, outcome.Applied)
		assert.Equal(t, session, next)
	})

	t.Run("Moves of another session are ignored", func(t *testing.T) {
		session := playing(t, alice)
		event := move(alice, entity.S, 5)
		event.SessionID = "42"

		next, outcome := Reconcile(session, event)

		assert.NoError(t, outcome.Fault)
		assert.Equal(t, session, next)
	})

	t.Run("Every applied step bumps the version", func(t *testing.T) {
		session := playing(t, alice)

		next, outcome := Reconcile(session, move(alice, entity.S, 5))

		assert.True(t, outcome.Applied)
		assert.Greater(t, next.Version, session.Version)
	})
}

func TestReconcile_Acknowledgements(t *testing.T) {
	t.Run("Join moves to the lobby", func(t *testing.T) {
		next, outcome := Reconcile(entity.NewSession(alice), entity.JoinAcknowledged{})

		assert.True(t, outcome.Applied)
		assert.True(t, next.IsWaiting())
	})

	t.Run("Join after the game started is ignored", func(t *testing.T) {
		session := playing(t, alice)

		next, outcome := Reconcile(session, entity.JoinAcknowledged{})

		assert.False(t, outcome.Applied)
		assert.Equal(t, session, next)
	})

	t.Run("Cancel ends the lobby", func(t *testing.T) {
		session, _ := feed(t, entity.NewSession(alice), entity.JoinAcknowledged{})

		next, outcome := Reconcile(session, entity.CancelAcknowledged{})

		assert.True(t, outcome.Applied)
		assert.Equal(t, entity.ResultCancelled, next.Result())
	})
}

func TestReconciler_Ingest(t *testing.T) {
	t.Run("Keeps the applied session", func(t *testing.T) {
		reconciler := NewReconciler(discardLogger(), alice, 3)

		outcome := reconciler.Ingest(entity.SessionCreated{FirstPlayer: alice, SecondPlayer: bob})

		assert.True(t, outcome.Applied)
		assert.True(t, reconciler.Session().IsPlaying())
	})

	t.Run("Requests a resync after consecutive faults", func(t *testing.T) {
		// Given: a reconciler that tolerates two faults in a row
		reconciler := NewReconciler(discardLogger(), alice, 3)
		reconciler.Ingest(entity.SessionCreated{FirstPlayer: alice, SecondPlayer: bob})
		before := reconciler.Session()

		// When: three bad moves arrive
		first := reconciler.Ingest(move(mallory, entity.S, 1))
		second := reconciler.Ingest(move(mallory, entity.S, 2))
		third := reconciler.Ingest(move(mallory, entity.S, 3))

		// Then: the third one asks for a resync and the session is untouched
		assert.False(t, first.Resync)
		assert.False(t, second.Resync)
		assert.True(t, third.Resync)
		assert.Equal(t, entity.NoticeResync, third.Notice().Kind)
		assert.Equal(t, before, reconciler.Session())
	})

	t.Run("A good event clears the fault streak", func(t *testing.T) {
		reconciler := NewReconciler(discardLogger(), alice, 2)
		reconciler.Ingest(entity.SessionCreated{FirstPlayer: alice, SecondPlayer: bob})

		reconciler.Ingest(move(mallory, entity.S, 1))
		reconciler.Ingest(move(alice, entity.S, 1))
		outcome := reconciler.Ingest(move(mallory, entity.S, 2))

		assert.Error(t, outcome.Fault)
		assert.False(t, outcome.Resync)
	})

	t.Run("Ignored events keep the fault streak", func(t *testing.T) {
		// Given: a reconciler that resyncs after two faults in a row
		reconciler := NewReconciler(discardLogger(), alice, 2)
		reconciler.Ingest(entity.SessionCreated{FirstPlayer: alice, SecondPlayer: bob})

		// When: a foreign game is announced between two faults
		reconciler.Ingest(move(mallory, entity.S, 1))
		between := reconciler.Ingest(entity.SessionCreated{FirstPlayer: mallory, SecondPlayer: bob})
		outcome := reconciler.Ingest(move(mallory, entity.S, 2))

		// Then: the announcement does not count as progress
		assert.False(t, between.Applied)
		assert.True(t, outcome.Resync)
	})

	t.Run("Reset starts over with a higher version", func(t *testing.T) {
		reconciler := NewReconciler(discardLogger(), alice, 3)
		reconciler.Ingest(entity.SessionCreated{FirstPlayer: alice, SecondPlayer: bob})
		before := reconciler.Session()

		reconciler.Reset()

		after := reconciler.Session()
		assert.True(t, after.IsConfiguring())
		assert.False(t, after.IsBound())
		assert.Greater(t, after.Version, before.Version)
	})
}
