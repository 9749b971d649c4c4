package crowns

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProgressRepo implements store.ProgressRepo for crowns tests.
type mockProgressRepo struct {
	crowns map[string]int
	err    error
}

func newMockRepo() *mockProgressRepo {
	return &mockProgressRepo{crowns: map[string]int{}}
}

func (m *mockProgressRepo) Level(context.Context, string) (int, error)  { return 0, nil }
func (m *mockProgressRepo) SetLevel(context.Context, string, int) error { return nil }
func (m *mockProgressRepo) CrownCount(_ context.Context, ledger string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.crowns[ledger], nil
}
func (m *mockProgressRepo) AddCrowns(_ context.Context, ledger string, n int) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.crowns[ledger] += n
	return m.crowns[ledger], nil
}
func (m *mockProgressRepo) Levels(context.Context) (map[string]int, error) { return nil, nil }
func (m *mockProgressRepo) Crowns(context.Context) (map[string]int, error) { return m.crowns, nil }
func (m *mockProgressRepo) Reset(context.Context) error                    { return nil }

func TestAward_BooksOnAppLedger(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, zerolog.Nop())
	ctx := context.Background()

	a, err := svc.Award(ctx, AppSyllables, 1, "s1", "Silben geschafft")
	require.NoError(t, err)
	assert.Equal(t, LedgerGerman, a.Ledger)
	assert.Equal(t, 1, a.Total)

	_, err = svc.Award(ctx, AppSudoku, 3, "s2", "Sudoku gelöst")
	require.NoError(t, err)
	a, err = svc.Award(ctx, AppMath, 1, "s3", "Arbeitsblatt fertig")
	require.NoError(t, err)
	assert.Equal(t, LedgerShared, a.Ledger)
	assert.Equal(t, 4, a.Total, "math and sudoku share a ledger")

	assert.Equal(t, map[string]int{"german": 1, "shared": 4}, repo.crowns)
	assert.Equal(t, 5, svc.SessionTotal())
	assert.Len(t, svc.SessionCrowns, 3)

	svc.ResetSession()
	assert.Zero(t, svc.SessionTotal())
}

func TestAward_PersistenceFailure(t *testing.T) {
	repo := newMockRepo()
	repo.err = errors.New("disk full")
	svc := NewService(repo, zerolog.Nop())

	a, err := svc.Award(context.Background(), AppLetters, 2, "s1", "")
	require.Error(t, err)
	require.NotNil(t, a)
	assert.Equal(t, 2, a.Count)
	assert.Zero(t, a.Total)
	assert.Equal(t, 2, svc.SessionTotal(), "award counts for the session")
}

func TestAward_NilRepo(t *testing.T) {
	svc := NewService(nil, zerolog.Nop())
	a, err := svc.Award(context.Background(), AppMath, 1, "s1", "")
	require.NoError(t, err)
	assert.Equal(t, 1, a.Count)
	assert.Equal(t, map[Ledger]int{LedgerGerman: 0, LedgerShared: 0}, svc.Totals(context.Background()))
}

func TestTotals(t *testing.T) {
	repo := newMockRepo()
	repo.crowns["shared"] = 7
	svc := NewService(repo, zerolog.Nop())
	assert.Equal(t, map[Ledger]int{LedgerGerman: 0, LedgerShared: 7}, svc.Totals(context.Background()))

	repo.err = errors.New("locked")
	assert.Equal(t, map[Ledger]int{LedgerGerman: 0, LedgerShared: 0}, svc.Totals(context.Background()))
}
